package court

import (
	"fmt"
	"log"
	"time"

	"royal-court/model"
)

// Ledger is the append-only sanction log the service writes to. Both query
// methods return records newest first.
type Ledger interface {
	Append(rec model.SanctionRecord) (int64, error)
	HistoryFor(subjectID int64) ([]model.SanctionRecord, error)
	Recent(limit int) ([]model.SanctionRecord, error)
}

// ChannelConfig stores per-guild announcement channel pointers.
type ChannelConfig interface {
	SetPilloryChannel(guildID, channelID int64) error
	PilloryChannel(guildID int64) (int64, bool, error)
	SetDecreeChannel(guildID, channelID int64) error
	DecreeChannel(guildID int64) (int64, bool, error)
}

// Enforcer performs the actual platform moderation calls. Implementations
// must make exactly one network call per method and return any platform
// failure untranslated; the service owns the error taxonomy.
type Enforcer interface {
	Ban(guildID, userID int64, reason string) error
	Kick(guildID, userID int64, reason string) error
	Timeout(guildID, userID int64, until time.Time, reason string) error
	ClearTimeout(guildID, userID int64, reason string) error
}

// SanctionRequest is a resolved (actor, target, parameters) tuple. The
// authority context must be freshly derived from live guild data by the
// caller.
type SanctionRequest struct {
	GuildID   int64
	ActorID   int64
	TargetID  int64
	Authority AuthorityContext
	Reason    string
	Kind      model.SanctionKind // timed sanctions only: pillory or stocks
	Minutes   int                // timed sanctions only
}

// SentenceResult reports a successfully applied timed sanction.
type SentenceResult struct {
	Record *model.SanctionRecord
	Until  time.Time
	Label  string // e.g. "1 hour"
}

// Service orchestrates sanctions: authority gate, platform enforcement,
// then ledger append, in that order. A failed enforcement call never
// produces a ledger row.
type Service struct {
	ledger   Ledger
	channels ChannelConfig
	enforcer Enforcer

	// Now supplies the clock; overridable in tests.
	Now func() time.Time
}

func NewService(ledger Ledger, channels ChannelConfig, enforcer Enforcer) *Service {
	return &Service{
		ledger:   ledger,
		channels: channels,
		enforcer: enforcer,
		Now:      time.Now,
	}
}

// Banish permanently bans the target and records the judgment.
func (s *Service) Banish(req SanctionRequest) (*model.SanctionRecord, error) {
	if ok, why := CanSanction(req.Authority); !ok {
		return nil, newDenied(why)
	}
	if err := s.enforcer.Ban(req.GuildID, req.TargetID, req.Reason); err != nil {
		return nil, newEnforcement("The gate guards refuse the writ of banishment!", err)
	}
	return s.append(req.TargetID, req.ActorID, model.SanctionBanish, req.Reason)
}

// CastOut kicks the target and records the judgment.
func (s *Service) CastOut(req SanctionRequest) (*model.SanctionRecord, error) {
	if ok, why := CanSanction(req.Authority); !ok {
		return nil, newDenied(why)
	}
	if err := s.enforcer.Kick(req.GuildID, req.TargetID, req.Reason); err != nil {
		return nil, newEnforcement("The guards at the gate refuse to open them!", err)
	}
	return s.append(req.TargetID, req.ActorID, model.SanctionCastOut, req.Reason)
}

// Sentence applies a timed sanction (pillory or stocks). The end instant is
// computed here, once; enforcement of expiry is Discord's job, so no active
// state is tracked.
func (s *Service) Sentence(req SanctionRequest) (*SentenceResult, error) {
	if req.Kind != model.SanctionPillory && req.Kind != model.SanctionStocks {
		return nil, newValidation(fmt.Sprintf("%q is not a timed sanction", req.Kind))
	}
	if err := ValidateSentence(req.Minutes); err != nil {
		return nil, err
	}
	if ok, why := CanSanction(req.Authority); !ok {
		return nil, newDenied(why)
	}

	until := s.Now().UTC().Add(time.Duration(req.Minutes) * time.Minute)
	if err := s.enforcer.Timeout(req.GuildID, req.TargetID, until, req.Reason); err != nil {
		return nil, newEnforcement("The sheriff refuseth to apply the stocks!", err)
	}

	rec, err := s.append(req.TargetID, req.ActorID, req.Kind,
		fmt.Sprintf("%d minutes: %s", req.Minutes, req.Reason))
	if err != nil {
		return nil, err
	}
	return &SentenceResult{Record: rec, Until: until, Label: SentenceLabel(req.Minutes)}, nil
}

// Pardon lifts an active timeout. Not subject to sentence validation, only
// to the authority gate.
func (s *Service) Pardon(req SanctionRequest) (*model.SanctionRecord, error) {
	if ok, why := CanSanction(req.Authority); !ok {
		return nil, newDenied(why)
	}
	if err := s.enforcer.ClearTimeout(req.GuildID, req.TargetID, req.Reason); err != nil {
		return nil, newEnforcement("The sheriff refuseth to turn the key!", err)
	}
	return s.append(req.TargetID, req.ActorID, model.SanctionPardon, req.Reason)
}

// RecordSummon writes a summons to the ledger. Summons have no platform
// side effect and no authority gate.
func (s *Service) RecordSummon(actorID, targetID int64, reason string) (*model.SanctionRecord, error) {
	return s.append(targetID, actorID, model.SanctionSummon, reason)
}

// RecordPurge writes a channel-cleanse audit entry. The purge itself is a
// channel operation the caller already performed; the subject is the acting
// moderator (see model.SanctionRecord).
func (s *Service) RecordPurge(actorID int64, deleted int) (*model.SanctionRecord, error) {
	return s.append(actorID, actorID, model.SanctionPurge,
		fmt.Sprintf("Cleansed %d messages", deleted))
}

// RecordDecree writes a proclamation audit entry, subject = acting
// moderator.
func (s *Service) RecordDecree(actorID int64, channelName, message string) (*model.SanctionRecord, error) {
	return s.append(actorID, actorID, model.SanctionDecree,
		fmt.Sprintf("Proclaimed in %s: %s", channelName, truncate(message, 50)))
}

// Chronicle returns the full judgment history for one subject, newest
// first. Display truncation is the caller's job.
func (s *Service) Chronicle(subjectID int64) ([]model.SanctionRecord, error) {
	records, err := s.ledger.HistoryFor(subjectID)
	if err != nil {
		return nil, newPersistence(err)
	}
	return records, nil
}

// CourtLog returns the limit most recent judgments across all subjects.
// The limit is validated here so the store stays a dumb select layer.
func (s *Service) CourtLog(limit int) ([]model.SanctionRecord, error) {
	if limit < 1 || limit > 25 {
		return nil, newValidation("Thou mayest view between 1 and 25 recent judgments!")
	}
	records, err := s.ledger.Recent(limit)
	if err != nil {
		return nil, newPersistence(err)
	}
	return records, nil
}

// SetPilloryChannel points a guild's public-shaming announcements at a
// channel.
func (s *Service) SetPilloryChannel(guildID, channelID int64) error {
	if err := s.channels.SetPilloryChannel(guildID, channelID); err != nil {
		return newPersistence(err)
	}
	return nil
}

// PilloryChannel returns the configured pillory channel, ok=false when none
// is set. The channel may no longer exist; callers treat that as a soft
// failure.
func (s *Service) PilloryChannel(guildID int64) (int64, bool, error) {
	id, ok, err := s.channels.PilloryChannel(guildID)
	if err != nil {
		return 0, false, newPersistence(err)
	}
	return id, ok, nil
}

// SetDecreeChannel points a guild's default decree hall at a channel.
func (s *Service) SetDecreeChannel(guildID, channelID int64) error {
	if err := s.channels.SetDecreeChannel(guildID, channelID); err != nil {
		return newPersistence(err)
	}
	return nil
}

// DecreeChannel returns the configured decree channel, ok=false when none
// is set.
func (s *Service) DecreeChannel(guildID int64) (int64, bool, error) {
	id, ok, err := s.channels.DecreeChannel(guildID)
	if err != nil {
		return 0, false, newPersistence(err)
	}
	return id, ok, nil
}

// append writes one ledger row. Called only after the platform action (if
// any) succeeded; on failure the whole operation is reported as failed even
// though the platform action stuck, which is an audit gap worth shouting
// about.
func (s *Service) append(subjectID, actorID int64, kind model.SanctionKind, reason string) (*model.SanctionRecord, error) {
	rec := model.SanctionRecord{
		SubjectID: subjectID,
		ActorID:   actorID,
		Kind:      kind,
		Reason:    reason,
		CreatedAt: s.Now().UTC(),
	}
	id, err := s.ledger.Append(rec)
	if err != nil {
		log.Printf("AUDIT GAP: %s against %d enforced but not recorded: %v", kind, subjectID, err)
		return nil, newPersistence(err)
	}
	rec.ID = id
	return &rec, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
