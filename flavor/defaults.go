package flavor

// defaultBank is the built-in court voice, used whenever the flavor file
// is absent or leaves a pool empty.
func defaultBank() Bank {
	return Bank{
		Prefixes: []string{
			"Hark!",
			"Verily,",
			"By mine honour,",
			"Prithee,",
			"Forsooth,",
			"By the King's decree,",
			"Hear ye, hear ye!",
			"Lo and behold,",
			"By mine troth,",
			"Marry,",
			"Gadzooks!",
			"Zounds!",
			"By the saints,",
			"By my halidom,",
			"In faith,",
			"By my beard,",
			"By the rood,",
			"Alack,",
			"Alas,",
			"Fie upon it!",
		},
		Titles: []string{
			"Royal Decree from the Throne",
			"Proclamation of the Crown",
			"Edict from the Royal Court",
			"Mandate of the Sovereign",
			"Declaration from the Monarch",
			"Announcement from the Castle",
			"Word from the Keep",
			"Message from the Palace",
			"Command from the Regent",
			"Bull from the Pontiff",
		},
		Signatures: []string{
			"By order of the Crown",
			"Sealed with the Royal Seal",
			"Witnessed by the Royal Scribe",
			"Proclaimed throughout the realm",
			"Let all subjects take heed",
			"Inscribed by the Court Chronicler",
			"Signed with royal blood",
			"Marked with the King's signet",
			"Carried by royal messenger",
			"Announced with trumpet blast",
		},
		Openings: []string{
			"**Hear ye, hear ye!**",
			"**Let it be known throughout the land that**",
			"**By royal command and sovereign will,**",
			"**Unto all loyal subjects of the realm,**",
			"**Thus spake the Crown from the highest tower:**",
			"**Be it proclaimed from castle to cottage that**",
			"**The word of the monarch rings clear:**",
			"**Let the trumpets sound and banners fly, for**",
		},
		Closings: []string{
			"**So says the Crown!**",
			"**Let none dare oppose this decree!**",
			"**May all heed these words!**",
			"**By my royal authority!**",
			"**So shall it be, now and forever!**",
			"**Let this be law in all the land!**",
			"**He who obeys shall prosper!**",
			"**Signed and sealed!**",
		},
		Messages: map[string][]string{
			"banish": {
				"**%s** hath been banished beyond the realm's borders forever!",
				"**%s** is cast out, never to darken our gates again!",
				"**%s** is exiled from these lands for all eternity!",
				"**%s** is sent beyond the pale, banished by royal command!",
			},
			"castout": {
				"**%s** hath been cast out beyond the castle gates!",
				"**%s** is shown the door of the keep!",
				"**%s** is expelled from the royal court!",
				"**%s** is tossed from the great hall!",
			},
			"pillory": {
				"**%s** hath been bound in the pillory for **%s**!",
				"**%s** is secured in the stocks for **%s**!",
				"**%s** faces public humiliation for **%s**!",
			},
			"stocks": {
				"**%s** is locked in the stocks for **%s**!",
				"**%s** is silenced for **%s**!",
				"**%s**'s tongue is stilled for **%s**!",
			},
			"pardon": {
				"**%s** hath been pardoned by the Crown!",
				"**%s** receives royal mercy!",
				"**%s** is granted clemency!",
				"**%s**'s sentence is lifted by royal grace!",
			},
			"summon": {
				"%s hath been summoned before the Crown!",
				"%s is called to the royal court!",
				"%s must answer the royal summons!",
				"%s is commanded to appear before the throne!",
			},
			"purge": {
				"**%d** messages swept away like autumn leaves!",
				"**%d** scrolls consigned to the flames!",
				"**%d** whispers silenced by royal decree!",
				"**%d** parchments torn and discarded!",
				"The royal broom hath swept clean! **%d** messages removed!",
			},
			"shame": {
				"**Hear ye!** %s standeth in the pillory for %s!\n**Crime:** *%s*\nLet mockery rain upon them like arrows!",
				"**Gather round!** %s is bound for %s!\n**Offense:** *%s*\nPelt them with rotten vegetables!",
				"**Attention all!** %s faces public shame for %s!\n**Transgression:** *%s*\nLet laughter be their punishment!",
			},
			"decree_confirm": {
				"Thy decree hath been proclaimed in %s!",
				"The royal word echoes through %s!",
				"All in %s shall hear thy decree!",
				"Thy proclamation rings in %s!",
			},
		},
	}
}
