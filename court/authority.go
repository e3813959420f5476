package court

// AuthorityContext carries the hierarchy facts needed to decide whether a
// sanction may proceed. It is derived fresh from live guild data for every
// command; role hierarchies shift between calls, so it is never cached.
type AuthorityContext struct {
	TargetIsOwner bool
	TargetIsSelf  bool // target is the bot's own identity
	BotRank       int  // highest role position held by the bot
	TargetRank    int  // highest role position held by the target
}

// CanSanction decides whether the requested target may be judged at all.
// Rules are evaluated in order, first match wins. Pure function, no side
// effects.
func CanSanction(ctx AuthorityContext) (bool, string) {
	if ctx.TargetIsOwner {
		return false, "The sovereign monarch may not be judged, noble sir."
	}
	if ctx.TargetIsSelf {
		return false, "One may not pass sentence upon oneself, good sirrah."
	}
	if ctx.BotRank <= ctx.TargetRank {
		return false, "The target beareth greater station than the Crown's agent, m'lord."
	}
	return true, ""
}
