// Package models defines the wire-level domain types for the payment
// instructions API.
//
// # Models
//
//   - Account: a caller-supplied account snapshot; the service never stores
//     accounts, each request carries the full set it operates on
//   - ResponseAccount: an account echoed back in a settlement response,
//     annotated with its pre-transfer balance
//   - SettlementResponse: the terminal result of processing one instruction
//   - InstructionRequest: the POST body accepted by the API
//
// # Design Principles
//
//  1. Balances are plain integer amounts; fractional units are not supported
//  2. SettlementResponse uses pointer fields for everything that must
//     serialize as JSON null when parsing fails before the field was read
//  3. Accounts is always an array in responses, empty (never null) on failure
package models
