package advisor

import "math"

// Decision is the action selected by the rule cascade. Amount carries the
// sized chips for bet/raise and the price for call; it is zero for fold,
// check, and all-in (all-in always means the full remaining stack).
type Decision struct {
	Action    Action
	Amount    float64
	Reasoning string
}

type ruleInput struct {
	strength float64
	winProb  float64
	potOdds  float64
	ctx      GameContext
	profile  OpponentProfile
	psych    StackPsychology
}

// decisionRule pairs a predicate with a handler. Rules are evaluated
// top-to-bottom with first-match-wins semantics so each precedence step can
// be tested on its own.
type decisionRule struct {
	name string
	when func(in ruleInput) bool
	then func(in ruleInput) Decision
}

var decisionRules = []decisionRule{
	// The bluff line outranks everything else: once the caller has committed
	// to bluffing, folding is off the table.
	{
		name: "bluff-line",
		when: func(in ruleInput) bool { return in.ctx.BluffIntent || in.ctx.ForceBluff },
		then: bluffLine,
	},
	{
		name: "preflop-premium",
		when: func(in ruleInput) bool {
			return in.ctx.Street == StreetPreflop && in.strength >= preflopRaiseBigStrength
		},
		then: preflopPremium,
	},
	{
		name: "preflop-strong",
		when: func(in ruleInput) bool {
			return in.ctx.Street == StreetPreflop && in.strength >= preflopRaiseStrength
		},
		then: preflopStrong,
	},
	{
		name: "preflop-playable",
		when: func(in ruleInput) bool {
			return in.ctx.Street == StreetPreflop && in.strength >= preflopOpenStrength
		},
		then: preflopPlayable,
	},
	{
		name: "preflop-weak",
		when: func(in ruleInput) bool { return in.ctx.Street == StreetPreflop },
		then: preflopWeak,
	},
	{
		name: "general-fold",
		when: func(in ruleInput) bool {
			return in.ctx.CallAmount > 0 && (in.winProb < generalFoldWinProb || in.strength < generalFoldStrength)
		},
		then: func(in ruleInput) Decision {
			return Decision{Action: ActionFold, Reasoning: "Weak holding facing a bet with poor winning chances."}
		},
	},
	{
		name: "general-strong",
		when: func(in ruleInput) bool {
			return in.strength >= generalStrongStrength || in.winProb >= generalStrongStrength*100
		},
		then: generalStrong,
	},
	{
		name: "general-medium",
		when: func(in ruleInput) bool {
			return in.strength >= generalMediumStrength || in.winProb >= generalMediumStrength*100
		},
		then: generalMedium,
	},
	{
		name: "general-marginal",
		when: func(in ruleInput) bool {
			return in.strength >= generalMarginalStrength || in.winProb >= generalMarginalStrength*100
		},
		then: generalMarginal,
	},
	{
		name: "general-weak",
		when: func(in ruleInput) bool { return true },
		then: generalWeak,
	},
}

// Decide selects the primary action for the given strength, win probability
// and pot odds. It always resolves to exactly one action, never folds when
// the check is free, and clamps every computed size to the hero's stack by
// substituting all-in.
func Decide(strength, winProb, potOdds float64, ctx GameContext, profile OpponentProfile, psych StackPsychology) Decision {
	in := ruleInput{
		strength: strength,
		winProb:  winProb,
		potOdds:  potOdds,
		ctx:      ctx,
		profile:  profile,
		psych:    psych,
	}
	for _, rule := range decisionRules {
		if rule.when(in) {
			return rule.then(in)
		}
	}
	// The last rule matches everything; this is unreachable.
	return Decision{Action: ActionCheck, Reasoning: "No rule matched."}
}

// betOrRaise picks the terminology for an aggressive action: preflop the
// blinds are already posted so opens are raises, postflop an unopened pot
// takes a bet.
func betOrRaise(ctx GameContext) Action {
	if ctx.CallAmount > 0 || ctx.Street == StreetPreflop {
		return ActionRaise
	}
	return ActionBet
}

// sizedOrAllIn caps a computed size at the hero's stack: anything at or past
// the stack becomes all-in rather than an illegal over-stack bet.
func sizedOrAllIn(action Action, size float64, in ruleInput, reasoning string) Decision {
	if size >= in.ctx.Stack {
		return Decision{Action: ActionAllIn, Reasoning: reasoning + " Sizing commits the remaining stack."}
	}
	return Decision{Action: action, Amount: size, Reasoning: reasoning}
}

// callOrAllIn treats a call that costs the whole stack as all-in.
func callOrAllIn(in ruleInput, reasoning string) Decision {
	if in.ctx.CallAmount >= in.ctx.Stack {
		return Decision{Action: ActionAllIn, Reasoning: reasoning + " Calling commits the remaining stack."}
	}
	return Decision{Action: ActionCall, Amount: in.ctx.CallAmount, Reasoning: reasoning}
}

func minRaiseSize(ctx GameContext) float64 {
	if ctx.CallAmount > 0 {
		return ctx.CallAmount * 2
	}
	return ctx.BigBlind
}

func preflopPremium(in ruleInput) Decision {
	size := math.Max(openRaiseBBMultiple*in.ctx.BigBlind, strongBetPotFraction*in.ctx.Pot)
	return sizedOrAllIn(ActionRaise, size, in, "Premium holding: raise for value.")
}

func preflopStrong(in ruleInput) Decision {
	size := standardRaiseBBMultiple * in.ctx.BigBlind
	if in.ctx.Pot > 4*in.ctx.BigBlind {
		size = openRaiseBBMultiple * in.ctx.BigBlind
	}
	return sizedOrAllIn(ActionRaise, size, in, "Strong holding: raise to thin the field.")
}

func preflopPlayable(in ruleInput) Decision {
	if in.ctx.CallAmount == 0 {
		size := standardRaiseBBMultiple * in.ctx.BigBlind
		return sizedOrAllIn(ActionRaise, size, in, "Playable holding in an unopened pot: open-raise.")
	}
	if in.ctx.CallAmount <= in.ctx.BigBlind {
		return callOrAllIn(in, "Playable holding getting a cheap price: call.")
	}
	return preflopWeak(in)
}

// preflopWeak is the preflop fallthrough: a free check is never folded, and
// only sub-0.30 holdings fold to a bet.
func preflopWeak(in ruleInput) Decision {
	if in.ctx.CallAmount == 0 {
		return Decision{Action: ActionCheck, Reasoning: "Weak holding but the check is free."}
	}
	if in.strength < preflopFoldStrength {
		return Decision{Action: ActionFold, Reasoning: "Weak holding facing a raise: fold."}
	}
	return callOrAllIn(in, "Marginal holding facing action: call and reassess.")
}

// bluffLine sizes a committed bluff aggressively, leaning larger against
// opponents who fold to aggression and tight tables. It never folds.
func bluffLine(in ruleInput) Decision {
	if in.ctx.CallAmount > 0 {
		size := math.Max(bluffRaiseCallMultiple*in.ctx.CallAmount, bluffRaisePotFraction*in.ctx.Pot)
		if size >= in.ctx.Stack*allInStackFraction {
			return Decision{Action: ActionAllIn, Reasoning: "Bluff raise would all but commit the stack: shove for maximum fold equity."}
		}
		return Decision{Action: ActionRaise, Amount: size, Reasoning: "Bluff raise to represent a hand stronger than the bettor's."}
	}

	pct := bluffOpenPotFraction + 0.2*clamp(in.profile.FoldToAggression, 0, 1)
	if in.profile.Tightness == TightnessTight {
		pct += 0.05
	}
	if pct > bluffOpenPotFractionMax {
		pct = bluffOpenPotFractionMax
	}

	size := math.Max(pct*in.ctx.Pot, in.ctx.BigBlind)
	if size >= in.ctx.Stack*allInStackFraction {
		return Decision{Action: ActionAllIn, Reasoning: "Bluff sizing would all but commit the stack: shove for maximum fold equity."}
	}
	return Decision{Action: betOrRaise(in.ctx), Amount: size, Reasoning: "Bluff into an unopened pot to take it down now."}
}

func generalStrong(in ruleInput) Decision {
	size := math.Max(minRaiseSize(in.ctx), strongBetPotFraction*in.ctx.Pot) * in.psych.SizingMultiplier()
	return sizedOrAllIn(betOrRaise(in.ctx), size, in, "Very strong hand: bet big for value.")
}

func generalMedium(in ruleInput) Decision {
	if in.ctx.CallAmount == 0 {
		size := mediumBetPotFraction * in.ctx.Pot
		return sizedOrAllIn(ActionBet, size, in, "Good hand in an unopened pot: bet half pot for value and protection.")
	}
	if in.winProb > in.potOdds || in.ctx.CallAmount <= in.psych.SmallCallThresholdBB()*in.ctx.BigBlind {
		return callOrAllIn(in, "Good hand getting the right price: call.")
	}
	return Decision{Action: ActionFold, Reasoning: "Good hand priced out by a large bet: fold."}
}

func generalMarginal(in ruleInput) Decision {
	if in.ctx.CallAmount == 0 {
		return Decision{Action: ActionCheck, Reasoning: "Marginal hand: take the free card."}
	}
	if in.winProb > in.potOdds && in.ctx.CallAmount <= verySmallCallBB*in.ctx.BigBlind {
		return callOrAllIn(in, "Marginal hand but the price is tiny: call.")
	}
	return Decision{Action: ActionFold, Reasoning: "Marginal hand without the odds to continue: fold."}
}

func generalWeak(in ruleInput) Decision {
	if in.ctx.CallAmount == 0 {
		return Decision{Action: ActionCheck, Reasoning: "Weak hand but the check is free."}
	}
	if in.ctx.CallAmount <= trivialCallBB*in.ctx.BigBlind && in.winProb >= generalTrivialWinProb {
		return callOrAllIn(in, "Weak hand closing the action for a trivial price: call.")
	}
	return Decision{Action: ActionFold, Reasoning: "Weak hand facing a bet: fold."}
}
