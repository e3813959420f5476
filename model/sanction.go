package model

import "time"

// SanctionKind identifies a moderation action in the court ledger.
type SanctionKind string

const (
	SanctionBanish  SanctionKind = "banish"
	SanctionCastOut SanctionKind = "castout"
	SanctionPillory SanctionKind = "pillory"
	SanctionStocks  SanctionKind = "stocks"
	SanctionPardon  SanctionKind = "pardon"
	SanctionSummon  SanctionKind = "summon"
	SanctionPurge   SanctionKind = "purge"
	SanctionDecree  SanctionKind = "decree"
)

// SanctionRecord is a single row in the 'punishments' ledger. Records are
// append-only: never updated or deleted once written.
//
// For purge and decree entries SubjectID holds the acting moderator rather
// than a punished member, so a moderator's own chronicle shows the purges
// and decrees they issued.
type SanctionRecord struct {
	ID        int64
	SubjectID int64
	ActorID   int64
	Kind      SanctionKind
	Reason    string
	CreatedAt time.Time // UTC
}
