// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task). This root package
// holds sentinel errors, validation types, and the Action contract used by
// the move transaction manager.
package domain
