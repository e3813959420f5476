package court

import (
	"errors"
	"testing"
	"time"

	"royal-court/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeEnforcer struct {
	bans, kicks, timeouts, clears int
	lastUntil                     time.Time
	err                           error
}

func (f *fakeEnforcer) Ban(guildID, userID int64, reason string) error {
	f.bans++
	return f.err
}

func (f *fakeEnforcer) Kick(guildID, userID int64, reason string) error {
	f.kicks++
	return f.err
}

func (f *fakeEnforcer) Timeout(guildID, userID int64, until time.Time, reason string) error {
	f.timeouts++
	f.lastUntil = until
	return f.err
}

func (f *fakeEnforcer) ClearTimeout(guildID, userID int64, reason string) error {
	f.clears++
	return f.err
}

type memLedger struct {
	records   []model.SanctionRecord
	appendErr error
}

func (m *memLedger) Append(rec model.SanctionRecord) (int64, error) {
	if m.appendErr != nil {
		return 0, m.appendErr
	}
	rec.ID = int64(len(m.records) + 1)
	m.records = append(m.records, rec)
	return rec.ID, nil
}

func (m *memLedger) HistoryFor(subjectID int64) ([]model.SanctionRecord, error) {
	var out []model.SanctionRecord
	for idx := len(m.records) - 1; idx >= 0; idx-- {
		if m.records[idx].SubjectID == subjectID {
			out = append(out, m.records[idx])
		}
	}
	return out, nil
}

func (m *memLedger) Recent(limit int) ([]model.SanctionRecord, error) {
	var out []model.SanctionRecord
	for idx := len(m.records) - 1; idx >= 0 && len(out) < limit; idx-- {
		out = append(out, m.records[idx])
	}
	return out, nil
}

type memChannels struct {
	pillory map[int64]int64
	decree  map[int64]int64
	err     error
}

func newMemChannels() *memChannels {
	return &memChannels{pillory: map[int64]int64{}, decree: map[int64]int64{}}
}

func (m *memChannels) SetPilloryChannel(guildID, channelID int64) error {
	if m.err != nil {
		return m.err
	}
	m.pillory[guildID] = channelID
	return nil
}

func (m *memChannels) PilloryChannel(guildID int64) (int64, bool, error) {
	if m.err != nil {
		return 0, false, m.err
	}
	id, ok := m.pillory[guildID]
	return id, ok, nil
}

func (m *memChannels) SetDecreeChannel(guildID, channelID int64) error {
	if m.err != nil {
		return m.err
	}
	m.decree[guildID] = channelID
	return nil
}

func (m *memChannels) DecreeChannel(guildID int64) (int64, bool, error) {
	if m.err != nil {
		return 0, false, m.err
	}
	id, ok := m.decree[guildID]
	return id, ok, nil
}

func newTestService() (*Service, *memLedger, *memChannels, *fakeEnforcer) {
	ledger := &memLedger{}
	channels := newMemChannels()
	enforcer := &fakeEnforcer{}
	svc := NewService(ledger, channels, enforcer)
	svc.Now = func() time.Time { return testNow }
	return svc, ledger, channels, enforcer
}

func allowedRequest() SanctionRequest {
	return SanctionRequest{
		GuildID:   100,
		ActorID:   7,
		TargetID:  42,
		Authority: AuthorityContext{BotRank: 5, TargetRank: 1},
		Reason:    "treason",
	}
}

func TestBanishAppendsExactlyOnce(t *testing.T) {
	svc, ledger, _, enforcer := newTestService()

	rec, err := svc.Banish(allowedRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, enforcer.bans)
	require.Len(t, ledger.records, 1)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, int64(42), rec.SubjectID)
	assert.Equal(t, int64(7), rec.ActorID)
	assert.Equal(t, model.SanctionBanish, rec.Kind)
	assert.Equal(t, "treason", rec.Reason)
	assert.Equal(t, testNow, rec.CreatedAt)
}

func TestBanishDeniedByAuthority(t *testing.T) {
	svc, ledger, _, enforcer := newTestService()

	req := allowedRequest()
	req.Authority.TargetIsOwner = true

	_, err := svc.Banish(req)
	require.Error(t, err)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindAuthorityDenied, kind)
	assert.Contains(t, err.Error(), "sovereign")

	// Denial must leave no trace anywhere.
	assert.Zero(t, enforcer.bans)
	assert.Empty(t, ledger.records)
}

func TestBanishEnforcementFailureWritesNothing(t *testing.T) {
	svc, ledger, _, enforcer := newTestService()
	enforcer.err = errors.New("missing permissions")

	_, err := svc.Banish(allowedRequest())
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, KindEnforcementFailed, kind)
	assert.Empty(t, ledger.records)
}

func TestCastOutUsesKick(t *testing.T) {
	svc, ledger, _, enforcer := newTestService()

	rec, err := svc.CastOut(allowedRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, enforcer.kicks)
	assert.Zero(t, enforcer.bans)
	assert.Equal(t, model.SanctionCastOut, rec.Kind)
	require.Len(t, ledger.records, 1)
}

func TestSentenceRejectsOutOfRangeBeforeEnforcement(t *testing.T) {
	for _, minutes := range []int{0, -1, 40321} {
		svc, ledger, _, enforcer := newTestService()

		req := allowedRequest()
		req.Kind = model.SanctionPillory
		req.Minutes = minutes

		_, err := svc.Sentence(req)
		require.Error(t, err, "minutes=%d", minutes)
		kind, _ := KindOf(err)
		assert.Equal(t, KindValidation, kind)
		assert.Zero(t, enforcer.timeouts, "minutes=%d must not reach the platform", minutes)
		assert.Empty(t, ledger.records)
	}
}

func TestSentenceRejectsUntimedKind(t *testing.T) {
	svc, _, _, enforcer := newTestService()

	req := allowedRequest()
	req.Kind = model.SanctionBanish
	req.Minutes = 10

	_, err := svc.Sentence(req)
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, KindValidation, kind)
	assert.Zero(t, enforcer.timeouts)
}

func TestSentenceComputesEndInstantAndLabel(t *testing.T) {
	svc, ledger, _, enforcer := newTestService()

	req := allowedRequest()
	req.Kind = model.SanctionStocks
	req.Minutes = 90

	result, err := svc.Sentence(req)
	require.NoError(t, err)

	assert.Equal(t, testNow.Add(90*time.Minute), result.Until)
	assert.Equal(t, result.Until, enforcer.lastUntil)
	assert.Equal(t, "1 hour", result.Label)
	require.Len(t, ledger.records, 1)
	assert.Equal(t, "90 minutes: treason", ledger.records[0].Reason)
	assert.Equal(t, model.SanctionStocks, ledger.records[0].Kind)
}

func TestSentenceBoundsAreInclusive(t *testing.T) {
	for _, minutes := range []int{1, 40320} {
		svc, ledger, _, _ := newTestService()

		req := allowedRequest()
		req.Kind = model.SanctionPillory
		req.Minutes = minutes

		_, err := svc.Sentence(req)
		require.NoError(t, err, "minutes=%d", minutes)
		require.Len(t, ledger.records, 1)
	}
}

func TestSentenceEnforcementFailureWritesNothing(t *testing.T) {
	svc, ledger, _, enforcer := newTestService()
	enforcer.err = errors.New("gateway hiccup")

	req := allowedRequest()
	req.Kind = model.SanctionPillory
	req.Minutes = 30

	_, err := svc.Sentence(req)
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, KindEnforcementFailed, kind)
	assert.Empty(t, ledger.records)
}

func TestPardonClearsTimeoutWithoutDurationCheck(t *testing.T) {
	svc, ledger, _, enforcer := newTestService()

	rec, err := svc.Pardon(allowedRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, enforcer.clears)
	assert.Zero(t, enforcer.timeouts)
	assert.Equal(t, model.SanctionPardon, rec.Kind)
	require.Len(t, ledger.records, 1)
}

func TestPersistenceFailureSurfacesAfterEnforcement(t *testing.T) {
	svc, ledger, _, enforcer := newTestService()
	ledger.appendErr = errors.New("disk full")

	_, err := svc.Banish(allowedRequest())
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, KindPersistenceFailed, kind)
	// The platform call already happened; the gap is the whole point.
	assert.Equal(t, 1, enforcer.bans)
}

func TestRecordPurgeIsSelfReferential(t *testing.T) {
	svc, ledger, _, _ := newTestService()

	rec, err := svc.RecordPurge(7, 25)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.SubjectID)
	assert.Equal(t, int64(7), rec.ActorID)
	assert.Equal(t, "Cleansed 25 messages", rec.Reason)
	require.Len(t, ledger.records, 1)
}

func TestRecordDecreeTruncatesMessage(t *testing.T) {
	svc, _, _, _ := newTestService()

	long := ""
	for len(long) < 80 {
		long += "proclaim "
	}
	rec, err := svc.RecordDecree(7, "town-square", long)
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.SubjectID)
	assert.Contains(t, rec.Reason, "Proclaimed in town-square: ")
	assert.Contains(t, rec.Reason, "...")

	short, err := svc.RecordDecree(7, "town-square", "the feast begins at sundown")
	require.NoError(t, err)
	assert.Equal(t, "Proclaimed in town-square: the feast begins at sundown", short.Reason)
}

func TestRecordSummonTargetsTheSummoned(t *testing.T) {
	svc, _, _, _ := newTestService()

	rec, err := svc.RecordSummon(7, 42, "answer for thy debts")
	require.NoError(t, err)
	assert.Equal(t, int64(42), rec.SubjectID)
	assert.Equal(t, int64(7), rec.ActorID)
	assert.Equal(t, model.SanctionSummon, rec.Kind)
}

func TestCourtLogValidatesLimit(t *testing.T) {
	svc, _, _, _ := newTestService()

	for _, limit := range []int{0, -1, 26} {
		_, err := svc.CourtLog(limit)
		require.Error(t, err, "limit=%d", limit)
		kind, _ := KindOf(err)
		assert.Equal(t, KindValidation, kind)
	}

	for _, limit := range []int{1, 25} {
		_, err := svc.CourtLog(limit)
		assert.NoError(t, err, "limit=%d", limit)
	}
}

func TestCourtLogReturnsNewestFirst(t *testing.T) {
	svc, _, _, _ := newTestService()

	for idx := 0; idx < 5; idx++ {
		_, err := svc.RecordSummon(7, int64(idx), "roll call")
		require.NoError(t, err)
	}

	records, err := svc.CourtLog(3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(4), records[0].SubjectID)
	assert.Equal(t, int64(3), records[1].SubjectID)
	assert.Equal(t, int64(2), records[2].SubjectID)
}

func TestChronicleIsReadOnlyAndRepeatable(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.RecordSummon(7, 42, "first")
	require.NoError(t, err)
	_, err = svc.RecordSummon(7, 42, "second")
	require.NoError(t, err)

	first, err := svc.Chronicle(42)
	require.NoError(t, err)
	second, err := svc.Chronicle(42)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "second", first[0].Reason)
}

func TestChannelConfigRoundTrip(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, ok, err := svc.PilloryChannel(100)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.SetPilloryChannel(100, 555))
	require.NoError(t, svc.SetDecreeChannel(100, 777))

	pillory, ok, err := svc.PilloryChannel(100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(555), pillory)

	decree, ok, err := svc.DecreeChannel(100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(777), decree)
}

func TestChannelConfigStoreErrorIsPersistenceFailure(t *testing.T) {
	svc, _, channels, _ := newTestService()
	channels.err = errors.New("locked")

	err := svc.SetPilloryChannel(100, 555)
	require.Error(t, err)
	kind, _ := KindOf(err)
	assert.Equal(t, KindPersistenceFailed, kind)

	_, _, err = svc.DecreeChannel(100)
	require.Error(t, err)
	kind, _ = KindOf(err)
	assert.Equal(t, KindPersistenceFailed, kind)
}
