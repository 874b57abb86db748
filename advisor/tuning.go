package advisor

// Tuning constants for the heuristic engine, grouped by concern so they can
// be adjusted and tested without touching control flow.

// Preflop hand-strength tiers
const (
	preflopPremiumPairScore = 0.85 // AA, KK, QQ
	preflopStrongPairScore  = 0.75 // JJ, TT
	preflopMediumPairScore  = 0.65 // 99, 88
	preflopSmallPairScore   = 0.55 // 77 and below

	preflopNonPairBase   = 0.30
	preflopHighCardQueen = 0.15 // high card >= Q
	preflopHighCardTen   = 0.10 // high card >= T
	preflopHighCardEight = 0.05 // high card >= 8
	preflopSuitedBonus   = 0.08
	preflopConnectorGap1 = 0.05 // gap <= 1
	preflopConnectorGap3 = 0.02 // gap <= 3
	preflopStrengthCap   = 0.90
)

// Postflop strength by best-hand category
const (
	strengthStraightFlush = 0.95
	strengthQuads         = 0.90
	strengthFullHouse     = 0.85
	strengthFlush         = 0.75
	strengthStraight      = 0.65
	strengthTrips         = 0.55
	strengthTwoPair       = 0.45
	strengthPair          = 0.35
	strengthHighCard      = 0.20
)

// Win-probability adjustment factors
const (
	opponentDiscountFactor = 0.92

	streetFactorPreflop = 0.85
	streetFactorFlop    = 0.90
	streetFactorTurn    = 0.95
	streetFactorRiver   = 1.00

	tightOpponentFactor      = 1.05
	looseOpponentFactor      = 0.95
	aggressiveOpponentFactor = 0.93 // applied when strength < 0.6
	passiveOpponentFactor    = 1.03

	shortOpponentFactor = 1.03 // short opponents present, strength >= 0.50
	deepOpponentFactor  = 0.97 // deep opponents present, strength < 0.60
	heroShortFactor     = 0.95 // hero short-stacked, strength < 0.55

	winProbFloor   = 5.0
	winProbCeiling = 95.0
)

// Decision thresholds
const (
	preflopRaiseBigStrength = 0.75
	preflopRaiseStrength    = 0.60
	preflopOpenStrength     = 0.45
	preflopFoldStrength     = 0.30
	generalStrongStrength   = 0.80
	generalMediumStrength   = 0.60
	generalMarginalStrength = 0.40
	generalFoldStrength     = 0.25
	generalFoldWinProb      = 15.0
	generalTrivialWinProb   = 25.0
)

// Bet sizing
const (
	openRaiseBBMultiple     = 3.0
	standardRaiseBBMultiple = 2.5
	strongBetPotFraction    = 0.75
	mediumBetPotFraction    = 0.50
	probeBetPotFraction     = 0.33
	bluffOpenPotFraction    = 0.50
	bluffOpenPotFractionMax = 0.70
	bluffRaiseCallMultiple  = 2.5
	bluffRaisePotFraction   = 0.70
	allInStackFraction      = 0.90 // bluff sizing at or past this goes all-in
)

// Stack-psychology sizing multipliers
const (
	heroShortSizingFactor   = 1.3
	heroDeepSizingFactor    = 0.9
	facingShortSizingFactor = 0.85
	facingDeepSizingFactor  = 1.15
)

// Small-call thresholds, in big blinds
const (
	smallCallBB        = 3.0
	smallCallShortBB   = 2.0 // hero short-stacked
	smallCallPressedBB = 4.0 // facing short opponents
	verySmallCallBB    = 1.5
	trivialCallBB      = 1.0
)

// Stack depth tiers, in big blinds
const (
	shortStackBB = 20.0
	deepStackBB  = 50.0

	desperationOnsetBB = 30.0
	facingDeepRatio    = 1.5
	facingShortRatio   = 0.67
)

// Opponent-profile classification thresholds
const (
	tightVPIP     = 20.0
	looseVPIP     = 30.0
	aggressiveAF  = 2.0
	aggressivePFR = 18.0
	passiveAF     = 1.0
)

// Bluff heuristics
const (
	boardThreatBase         = 0.2
	boardThreatFlushBonus   = 0.15
	boardThreatConnectBonus = 0.10
	boardThreatConnectCap   = 0.20
	boardThreatHighCardMax  = 0.20
	boardThreatFloor        = 0.1
	boardThreatCeiling      = 0.8

	bluffBaselinePreflop = 35.0
	bluffBaselineFlop    = 45.0
	bluffBaselineTurn    = 50.0
	bluffBaselineRiver   = 55.0

	bluffMultiwayPenalty  = 8.0  // per opponent beyond the first
	bluffBonusCap         = 25.0 // combined board threat + sizing bonus
	bluffThreatWeight     = 0.3
	bluffSizingWeight     = 0.25
	bluffAggressionWeight = 0.2
	bluffAggressionCap    = 20.0

	bluffSuccessFloor   = 5.0
	bluffSuccessCeiling = 90.0
)

// Strong-opportunity detector thresholds
const (
	oppRiverMaxStrength     = 0.30
	oppRiverMaxWinProb      = 45.0
	oppThreatMin            = 0.5
	oppMaxAggression        = 0.35 // normalized [0,1]
	oppSemiBluffMinStrength = 0.30
	oppSemiBluffMaxStrength = 0.55
	oppStealMinPlayers      = 2
	oppStealMaxPlayers      = 3
)

// Frequency split
const (
	frequencyBase       = 60
	frequencyEdgeCap    = 30
	frequencyFloor      = 50
	frequencyCeiling    = 95
	frequencyBluffBoost = 10
	frequencyBluffCut   = 15
)
