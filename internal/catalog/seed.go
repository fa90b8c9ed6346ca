package catalog

import "fmt"

// Shared Likert option tables. Reverse-scored items get the pre-inverted
// table; the scoring engine never flips values at runtime.
var (
	likert5 = []Option{
		{Value: 1, Text: "Not at all"},
		{Value: 2, Text: "Mostly not"},
		{Value: 3, Text: "Neutral"},
		{Value: 4, Text: "Mostly yes"},
		{Value: 5, Text: "Very much"},
	}

	likert7 = []Option{
		{Value: 1, Text: "Strongly disagree"},
		{Value: 2, Text: "Disagree"},
		{Value: 3, Text: "Slightly disagree"},
		{Value: 4, Text: "Neutral"},
		{Value: 5, Text: "Slightly agree"},
		{Value: 6, Text: "Agree"},
		{Value: 7, Text: "Strongly agree"},
	}
)

func init() {
	c, err := New(seedInstruments())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
	}
	defaultCatalog = c
}

// seedInstruments returns the built-in instrument set. Adding an instrument
// is a data-entry operation; New enforces the structural invariants.
func seedInstruments() []Instrument {
	return []Instrument{
		attachmentECR(),
		loveLanguage(),
		relationshipSatisfaction(),
		conflictStyle(),
		gottmanHealth(),
	}
}

// attachmentECR is a short-form ECR-R adult attachment inventory.
// Six anxiety items and six avoidance items on a 7-point scale.
func attachmentECR() Instrument {
	return Instrument{
		ID:          "attachment-ecr",
		Title:       "Attachment Style (ECR-R)",
		Description: "Adult attachment assessment based on the Experiences in Close Relationships-Revised scale. Measures the anxiety and avoidance dimensions.",
		Emoji:       "🔗",
		Source:      "Fraley, Waller & Brennan (2000)",
		ScoringType: ScoringDimension,
		Dimensions:  [2]string{"anxiety", "avoidance"},
		Questions: []Question{
			{ID: "ecr-a1", Text: "I often worry whether my partner really loves me", Category: "anxiety", Options: likert7},
			{ID: "ecr-a2", Text: "I'm afraid my partner will leave me", Category: "anxiety", Options: likert7},
			{ID: "ecr-a3", Text: "I worry about being abandoned by my partner", Category: "anxiety", Options: likert7},
			{ID: "ecr-a4", Text: "I worry I won't get as much care and affection from my partner as I need", Category: "anxiety", Options: likert7},
			{ID: "ecr-a5", Text: "When my partner is out of touch, I get anxious that something bad has happened", Category: "anxiety", Options: likert7},
			{ID: "ecr-a6", Text: "I worry my partner doesn't want me as much as I want them", Category: "anxiety", Options: likert7},
			{ID: "ecr-v1", Text: "I'm uncomfortable opening up to my partner", Category: "avoidance", Options: likert7},
			{ID: "ecr-v2", Text: "Getting very close to my partner makes me uncomfortable", Category: "avoidance", Options: likert7},
			{ID: "ecr-v3", Text: "I find it difficult to depend on my partner", Category: "avoidance", Options: likert7},
			{ID: "ecr-v4", Text: "I get uneasy when my partner tries to get too close", Category: "avoidance", Options: likert7},
			{ID: "ecr-v5", Text: "I prefer staying independent over getting emotionally close", Category: "avoidance", Options: likert7},
			{ID: "ecr-v6", Text: "It's hard for me to share my deepest thoughts and feelings with my partner", Category: "avoidance", Options: likert7},
		},
		ResultBands: []ResultBand{
			{
				Category:    QuadrantLowLow,
				Type:        "secure",
				Title:       "Secure",
				Emoji:       "💚",
				Description: "You hold a comfortable balance between intimacy and independence. You trust your partner and feel worthy of being loved, and you can communicate constructively even in conflict.",
				Tips: []string{
					"Keep up the healthy relationship patterns you already have",
					"Practice understanding and adapting to your partner's attachment style",
					"Continue honest, open communication in the relationship",
					"Try being the one who reassures your partner when they feel anxious",
				},
			},
			{
				Category:    QuadrantHighLow,
				Type:        "anxious",
				Title:       "Anxious-Preoccupied",
				Emoji:       "💛",
				Description: "You crave closeness but fear abandonment. You react sensitively to small changes in your partner and often need reassurance. The relationship occupies a lot of your thoughts.",
				Tips: []string{
					"When anxiety hits, wait five minutes before reaching for the phone",
					"Ask your partner directly instead of assuming the worst about their behavior",
					"Build a sense of self-worth from things beyond the relationship",
					"Use the lemon protocol to check your partner's state before reacting",
					"When anxiety rises, breathe deeply and focus on the present",
				},
			},
			{
				Category:    QuadrantLowHigh,
				Type:        "avoidant",
				Title:       "Dismissive-Avoidant",
				Emoji:       "💙",
				Description: "You value independence and self-sufficiency, and getting too close feels uncomfortable. Expressing emotion is hard, and you prefer personal space over intimacy.",
				Tips: []string{
					"Practice expressing one small feeling every day",
					"When you need distance, tell your partner when you'll come back",
					"Receive your partner's need for closeness as love, not pressure",
					"Use the lime protocol to ask clearly for time when you need it",
					"Remember that getting close doesn't mean losing your independence",
				},
			},
			{
				Category:    QuadrantHighHigh,
				Type:        "fearful",
				Title:       "Fearful-Avoidant",
				Emoji:       "💜",
				Description: "You both want and fear intimacy. A push-pull pattern can repeat: pulling away when things get close, reaching out when they drift apart.",
				Tips: []string{
					"Recognizing your own push-pull pattern is the first step",
					"Build trust gradually inside a safe relationship",
					"Notice how past hurts shape your present relationship",
					"Consider professional counseling to explore your attachment patterns",
					"Start with small moments of closeness and expand from there",
				},
			},
		},
	}
}

// loveLanguage measures the five love languages, three items each.
func loveLanguage() Instrument {
	return Instrument{
		ID:          "love-language",
		Title:       "The Five Love Languages",
		Description: "Based on Gary Chapman's theory, identifies the primary way you feel and express love.",
		Emoji:       "💝",
		Source:      "Gary Chapman - The 5 Love Languages",
		ScoringType: ScoringCategoryMax,
		Questions: []Question{
			{ID: "ll-w1", Text: "Hearing \"I love you\", \"thank you\", or \"you're amazing\" makes me feel loved", Category: "words", Options: likert5},
			{ID: "ll-w2", Text: "A compliment or word of encouragement can make my whole day", Category: "words", Options: likert5},
			{ID: "ll-w3", Text: "It matters to me that my partner acknowledges my efforts out loud", Category: "words", Options: likert5},
			{ID: "ll-t1", Text: "Spending time together with my partner matters more than anything", Category: "time", Options: likert5},
			{ID: "ll-t2", Text: "I feel loved when my partner gives me their full attention", Category: "time", Options: likert5},
			{ID: "ll-t3", Text: "When we're together, I want their attention on me, not their phone", Category: "time", Options: likert5},
			{ID: "ll-g1", Text: "A gift from my partner feels like their heart in my hands", Category: "gifts", Options: likert5},
			{ID: "ll-g2", Text: "I feel let down when a special day passes without a gift", Category: "gifts", Options: likert5},
			{ID: "ll-g3", Text: "Even a small gift moves me because it means they thought of me", Category: "gifts", Options: likert5},
			{ID: "ll-s1", Text: "I feel loved when my partner does things for me — cooking, chores, errands", Category: "service", Options: likert5},
			{ID: "ll-s2", Text: "Practical help lands deeper for me than words do", Category: "service", Options: likert5},
			{ID: "ll-s3", Text: "I'm truly grateful when my partner pitches in while I'm busy", Category: "service", Options: likert5},
			{ID: "ll-p1", Text: "Holding hands, hugs, and physical affection are very important to me", Category: "touch", Options: likert5},
			{ID: "ll-p2", Text: "Without physical touch it's hard for me to feel loved", Category: "touch", Options: likert5},
			{ID: "ll-p3", Text: "Even a light touch from my partner lifts my mood", Category: "touch", Options: likert5},
		},
		ResultBands: []ResultBand{
			{
				Category:    "words",
				Type:        "words",
				Title:       "Words of Affirmation",
				Emoji:       "💬",
				Description: "You feel loved through praise, encouragement, gratitude, and spoken affection. Words like \"I love you\", \"thank you\", and \"well done\" carry real weight for you.",
				Tips: []string{
					"Ask your partner directly for verbal expressions of love",
					"Exchange affection through texts and notes too",
					"Give your partner specific compliments in return",
					"Let them know that criticism and insults cut especially deep for you",
				},
			},
			{
				Category:    "time",
				Type:        "time",
				Title:       "Quality Time",
				Emoji:       "⏰",
				Description: "You feel loved through undivided attention and shared time. Having your partner focus on you and do things together is what matters.",
				Tips: []string{
					"Set a regular, protected date time",
					"Put phones down and make eye contact when you're together",
					"Try new activities as a couple",
					"In a long-distance relationship, protect your video call time",
				},
			},
			{
				Category:    "gifts",
				Type:        "gifts",
				Title:       "Receiving Gifts",
				Emoji:       "🎁",
				Description: "You feel loved through thoughtful gifts. It's not the price — the fact that they thought of you and prepared something is what moves you.",
				Tips: []string{
					"Keep notes of things your partner mentions wanting",
					"Hand over small gifts on ordinary days, not just special ones",
					"Handmade things and letters make great gifts too",
					"Show real delight when you receive a gift",
				},
			},
			{
				Category:    "service",
				Type:        "service",
				Title:       "Acts of Service",
				Emoji:       "🤝",
				Description: "You feel loved through actions and practical help. Showing beats telling for you.",
				Tips: []string{
					"Recognize the things your partner does for you as expressions of love",
					"Ask \"what can I help with?\" first",
					"Express gratitude even for small favors",
					"Tell your partner specifically what help you'd like",
				},
			},
			{
				Category:    "touch",
				Type:        "touch",
				Title:       "Physical Touch",
				Emoji:       "🤗",
				Description: "You feel loved through physical contact. Holding hands, hugging, and casual touch mean a great deal to you.",
				Tips: []string{
					"Build natural physical affection into daily life",
					"In a long-distance relationship, make touch a priority when you meet",
					"Respect your partner's own preferences and boundaries around touch",
					"Start small — sitting close on the couch counts",
				},
			},
		},
	}
}

// relationshipSatisfaction is the seven-item Hendrick RAS. Items 4 and 7
// are reverse-scored via pre-inverted option tables.
func relationshipSatisfaction() Instrument {
	return Instrument{
		ID:          "relationship-satisfaction",
		Title:       "Relationship Satisfaction (RAS)",
		Description: "The Relationship Assessment Scale — a validated measure of overall satisfaction with your current relationship.",
		Emoji:       "📊",
		Source:      "Hendrick (1988)",
		ScoringType: ScoringSum,
		Questions: []Question{
			{
				ID:   "ras-1",
				Text: "How well does your partner meet your needs?",
				Options: []Option{
					{Value: 1, Text: "Poorly"},
					{Value: 2, Text: "Somewhat poorly"},
					{Value: 3, Text: "Average"},
					{Value: 4, Text: "Fairly well"},
					{Value: 5, Text: "Extremely well"},
				},
			},
			{
				ID:   "ras-2",
				Text: "In general, how satisfied are you with your relationship?",
				Options: []Option{
					{Value: 1, Text: "Very unsatisfied"},
					{Value: 2, Text: "Unsatisfied"},
					{Value: 3, Text: "Average"},
					{Value: 4, Text: "Satisfied"},
					{Value: 5, Text: "Very satisfied"},
				},
			},
			{
				ID:   "ras-3",
				Text: "How good is your relationship compared to most?",
				Options: []Option{
					{Value: 1, Text: "Much worse"},
					{Value: 2, Text: "Somewhat worse"},
					{Value: 3, Text: "About the same"},
					{Value: 4, Text: "Somewhat better"},
					{Value: 5, Text: "Much better"},
				},
			},
			{
				ID:      "ras-4",
				Text:    "How often do you wish you hadn't gotten into this relationship?",
				Reverse: true,
				Options: []Option{
					{Value: 5, Text: "Never"},
					{Value: 4, Text: "Rarely"},
					{Value: 3, Text: "Sometimes"},
					{Value: 2, Text: "Often"},
					{Value: 1, Text: "Very often"},
				},
			},
			{
				ID:   "ras-5",
				Text: "To what extent has your relationship met your original expectations?",
				Options: []Option{
					{Value: 1, Text: "Not at all"},
					{Value: 2, Text: "A little"},
					{Value: 3, Text: "Average"},
					{Value: 4, Text: "Mostly"},
					{Value: 5, Text: "Completely"},
				},
			},
			{
				ID:   "ras-6",
				Text: "How much do you love your partner?",
				Options: []Option{
					{Value: 1, Text: "Not much"},
					{Value: 2, Text: "A little"},
					{Value: 3, Text: "Average"},
					{Value: 4, Text: "A lot"},
					{Value: 5, Text: "Very much"},
				},
			},
			{
				ID:      "ras-7",
				Text:    "How many problems are there in your relationship?",
				Reverse: true,
				Options: []Option{
					{Value: 5, Text: "Almost none"},
					{Value: 4, Text: "A few"},
					{Value: 3, Text: "Average"},
					{Value: 2, Text: "Many"},
					{Value: 1, Text: "Very many"},
				},
			},
		},
		ResultBands: []ResultBand{
			{
				Range:       Range{Low: 7, High: 15},
				Type:        "low",
				Title:       "Low Satisfaction",
				Emoji:       "😔",
				Description: "You're going through real difficulty in this relationship. There may be fundamental issues, and a serious conversation or professional help may be needed.",
				Tips: []string{
					"Talk honestly with your partner about where the relationship stands",
					"Write down specifically what feels unsatisfying",
					"Consider couples counseling",
					"Take time to seriously consider whether to continue the relationship",
					"Sort out your own feelings and needs first",
				},
			},
			{
				Range:       Range{Low: 16, High: 22},
				Type:        "moderate-low",
				Title:       "Somewhat Low Satisfaction",
				Emoji:       "😐",
				Description: "Parts of the relationship need improvement. It's still recoverable, and active effort can turn things around.",
				Tips: []string{
					"Calmly share the unsatisfying parts with your partner",
					"Hold a weekly relationship check-in",
					"Start with small positive changes",
					"Acknowledge your partner's efforts and express gratitude",
					"Try new activities together",
				},
			},
			{
				Range:       Range{Low: 23, High: 28},
				Type:        "moderate-high",
				Title:       "Moderate-High Satisfaction",
				Emoji:       "🙂",
				Description: "Overall you're maintaining a healthy relationship. Polishing the small rough edges can make it even better.",
				Tips: []string{
					"Keep doing what's already working",
					"Communicate small frustrations before they pile up",
					"Learn each other's love languages",
					"Plan regular dates",
					"Express appreciation more often",
				},
			},
			{
				Range:       Range{Low: 29, High: 35},
				Type:        "high",
				Title:       "High Satisfaction",
				Emoji:       "😊",
				Description: "A deeply satisfying relationship. You understand and support each other well, with healthy relationship patterns in place.",
				Tips: []string{
					"Maintain the good relationship you have",
					"Don't coast — keep putting in the effort",
					"Seek out new experiences together",
					"Be a model of a good relationship for those around you",
					"Keep expressing your gratitude",
				},
			},
		},
	}
}

// conflictStyle is a short Thomas-Kilmann conflict mode screen,
// two items per mode.
func conflictStyle() Instrument {
	return Instrument{
		ID:          "conflict-style",
		Title:       "Conflict Resolution Style",
		Description: "Based on the Thomas-Kilmann Conflict Mode Instrument, identifies how you tend to handle conflict.",
		Emoji:       "⚡",
		Source:      "Thomas & Kilmann (1974)",
		ScoringType: ScoringCategoryMax,
		Questions: []Question{
			{ID: "tki-c1", Text: "In a conflict, if I believe I'm right I argue my case to the end", Category: "competing", Options: likert5},
			{ID: "tki-c2", Text: "Winning the argument matters to me", Category: "competing", Options: likert5},
			{ID: "tki-a1", Text: "When conflict arises, I tend to avoid or postpone the conversation", Category: "avoiding", Options: likert5},
			{ID: "tki-a2", Text: "I think it's better to just let uncomfortable topics slide", Category: "avoiding", Options: likert5},
			{ID: "tki-co1", Text: "In a conflict, I look for a solution that satisfies both of us", Category: "collaborating", Options: likert5},
			{ID: "tki-co2", Text: "I work hard to deeply understand my partner's position when solving problems", Category: "collaborating", Options: likert5},
			{ID: "tki-ac1", Text: "I often give up my own position for the sake of the relationship", Category: "accommodating", Options: likert5},
			{ID: "tki-ac2", Text: "I'd rather endure than upset my partner", Category: "accommodating", Options: likert5},
			{ID: "tki-cp1", Text: "Meeting in the middle, each giving a little, feels like the realistic approach", Category: "compromising", Options: likert5},
			{ID: "tki-cp2", Text: "A quick agreement often matters more than a perfect solution", Category: "compromising", Options: likert5},
		},
		ResultBands: []ResultBand{
			{
				Category:    "competing",
				Type:        "competing",
				Title:       "Competing",
				Emoji:       "🔥",
				Description: "You pursue your own views and goals strongly. You're confident and decisive, but winning can start to matter more than the relationship.",
				Tips: []string{
					"Acknowledge that your partner's view may have merit too",
					"Shift the focus from winning to solving it together",
					"Practice softer conversation openers",
					"Respect your partner's feelings as well",
					"Sometimes stepping back is its own kind of strength",
				},
			},
			{
				Category:    "avoiding",
				Type:        "avoiding",
				Title:       "Avoiding",
				Emoji:       "🚪",
				Description: "You tend to steer away from conflict. You value peace, but unresolved problems can quietly pile up.",
				Tips: []string{
					"Start by voicing the small complaints",
					"Remember that avoidance can let problems grow",
					"Use the lime protocol to buy time, but always return to the conversation",
					"Try writing your thoughts down before talking",
					"Ask your partner to make it safe for you to speak up",
				},
			},
			{
				Category:    "collaborating",
				Type:        "collaborating",
				Title:       "Collaborating",
				Emoji:       "🤝",
				Description: "You look for solutions that meet both partners' needs. It takes time, but it produces the best outcomes.",
				Tips: []string{
					"This is an excellent way to handle conflict",
					"It can take a while, so bring patience",
					"Check first whether your partner is ready to collaborate",
					"For small issues a quick compromise can be more efficient",
					"Understand your partner's conflict style too",
				},
			},
			{
				Category:    "accommodating",
				Type:        "accommodating",
				Title:       "Accommodating",
				Emoji:       "🕊️",
				Description: "You yield to keep harmony in the relationship. You're deeply considerate, but your own needs can go unmet.",
				Tips: []string{
					"Your opinions and feelings matter too",
					"Don't yield on the things that really matter to you",
					"Swallowed resentment eventually boils over",
					"Practice saying \"I'd like it if we...\"",
					"Healthy boundaries are good for the relationship",
				},
			},
			{
				Category:    "compromising",
				Type:        "compromising",
				Title:       "Compromising",
				Emoji:       "⚖️",
				Description: "You meet in the middle, each side giving a little. Practical and efficient, though full satisfaction can be elusive.",
				Tips: []string{
					"A fast and fair way to resolve things",
					"Sometimes deeper collaboration produces a better outcome",
					"Don't compromise on core values or important issues",
					"Learn to tell when collaboration is needed instead of compromise",
					"Dig into what your partner really needs",
				},
			},
		},
	}
}

// gottmanHealth screens for Gottman's four horsemen. Category sums feed the
// dominant-issue readout, but the displayed band is resolved by total score.
func gottmanHealth() Instrument {
	return Instrument{
		ID:          "gottman-health",
		Title:       "Relationship Health (Gottman)",
		Description: "Checks for warning signs in your relationship based on Gottman's Four Horsemen.",
		Emoji:       "💊",
		Source:      "John Gottman - The Four Horsemen",
		ScoringType: ScoringCategoryMax,
		TotalBanded: true,
		Questions: []Question{
			{ID: "gh-cr1", Text: "When I'm angry I attack my partner's character (e.g. \"you're always so selfish\")", Category: "criticism", Options: likert5},
			{ID: "gh-cr2", Text: "When complaining, I often reach for \"you always...\" or \"you never...\"", Category: "criticism", Options: likert5},
			{ID: "gh-cr3", Text: "When pointing out a mistake, I end up blaming the person rather than the behavior", Category: "criticism", Options: likert5},
			{ID: "gh-co1", Text: "I've used dismissive or mocking expressions or tone with my partner", Category: "contempt", Options: likert5},
			{ID: "gh-co2", Text: "I've rolled my eyes at, ridiculed, or been sarcastic toward my partner", Category: "contempt", Options: likert5},
			{ID: "gh-co3", Text: "I've felt that my partner is beneath me or pathetic", Category: "contempt", Options: likert5},
			{ID: "gh-de1", Text: "When my partner raises a complaint, I make excuses or counterattack", Category: "defensiveness", Options: likert5},
			{ID: "gh-de2", Text: "I tend to deflect blame with \"well, that's partly your fault too\"", Category: "defensiveness", Options: likert5},
			{ID: "gh-de3", Text: "Criticism makes me defensive automatically", Category: "defensiveness", Options: likert5},
			{ID: "gh-st1", Text: "During conflict I sometimes shut down the conversation entirely and go silent", Category: "stonewalling", Options: likert5},
			{ID: "gh-st2", Text: "When emotions run high I leave the room or ignore my partner", Category: "stonewalling", Options: likert5},
			{ID: "gh-st3", Text: "Mid-conversation I sometimes close off and stop responding", Category: "stonewalling", Options: likert5},
		},
		ResultBands: []ResultBand{
			{
				Range:       Range{Low: 12, High: 24},
				Type:        "healthy",
				Title:       "Healthy Relationship",
				Emoji:       "💚",
				Description: "Your communication shows almost none of the four toxins. Keep up the good habits you've built.",
				Tips: []string{
					"Maintain your current healthy communication style",
					"The key is never losing respect, even in conflict",
					"Check in on the relationship from time to time",
					"Express appreciation for each other often",
				},
			},
			{
				Range:       Range{Low: 25, High: 36},
				Type:        "caution",
				Title:       "Caution Needed",
				Emoji:       "💛",
				Description: "Some toxic patterns are showing up. Recognizing and correcting them now can make the relationship better.",
				Tips: []string{
					"Identify which toxin shows up most",
					"Practice \"I\" statements instead of blame",
					"Consciously hold on to respect for your partner",
					"Take a break when emotions escalate",
					"Increase the positive interactions between you",
				},
			},
			{
				Range:       Range{Low: 37, High: 48},
				Type:        "warning",
				Title:       "Warning Stage",
				Emoji:       "🧡",
				Description: "Several toxic patterns are affecting the relationship. Active repair work is needed.",
				Tips: []string{
					"Learn about the four horsemen and start noticing them",
					"Practice turning criticism into complaints about behavior",
					"The antidote to contempt is respect and appreciation",
					"Instead of defending, own even part of the responsibility",
					"Replace stonewalling with \"let's take a break and come back to this\"",
					"Consider couples counseling",
				},
			},
			{
				Range:       Range{Low: 49, High: 60},
				Type:        "danger",
				Title:       "Danger Stage",
				Emoji:       "❤️‍🩹",
				Description: "The toxic patterns are at a serious level. In Gottman's research these patterns predict relationship failure. Professional help is needed.",
				Tips: []string{
					"This result does not mean the relationship is over",
					"Recovery is possible if you're both willing to change",
					"Couples counseling is strongly recommended",
					"Individual counseling can help too",
					"Look for a Gottman Method practitioner",
					"Stop trading blame and face the problem as a team",
				},
			},
		},
	}
}
