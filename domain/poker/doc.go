// Package poker implements the table engine for casual multi-variant
// poker: five-card draw, seven-card stud with follow-the-queen, and
// Texas Hold'em, with optional wild cards and computer opponents.
//
// # Core Types
//
// Table: The hand state machine and sole owner of a table's state. It
// accepts actions through Submit, drives computer seats through Tick,
// and is redacted per viewer through State.
//
// Action: One submitted player action (check, raise, discard, choose a
// variant, and so on).
//
// Config: The table setup consumed once at creation: roster, stakes,
// variant lock or dealer's choice, and the wildcard options on offer.
//
// View: A per-viewer snapshot. Other seats' hole cards stay hidden
// until the showdown reveals them.
//
// # Game Flow
//
// A hand progresses through phases: variant selection (dealer's choice
// tables only) → wild selection → ante → betting rounds interleaved
// with the variant's dealing or draw phases → settlement. Dealing and
// showdown are transient; the machine never waits for input there.
//
// # Hand Evaluation
//
// Showdown ranking is delegated to the eval package, which understands
// jokers and table-chosen wild cards. Side pots for all-in scenarios
// come from the potmanager package; ties split evenly with the odd
// chip going to the earliest winner left of the dealer.
package poker
