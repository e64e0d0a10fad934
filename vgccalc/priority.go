package vgccalc

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// priorityMoves maps move names to their bracket. Anything absent is
// bracket 0.
var priorityMoves = map[string]int{
	"helping-hand": 5,

	"protect":         4,
	"detect":          4,
	"endure":          4,
	"kings-shield":    4,
	"spiky-shield":    4,
	"baneful-bunker":  4,
	"silk-trap":       4,
	"burning-bulwark": 4,
	"obstruct":        4,
	"max-guard":       4,

	"fake-out":      3,
	"quick-guard":   3,
	"wide-guard":    3,
	"crafty-shield": 3,
	"mat-block":     3,

	"extreme-speed":    2,
	"first-impression": 2,
	"feint":            2,

	"aqua-jet":       1,
	"bullet-punch":   1,
	"ice-shard":      1,
	"mach-punch":     1,
	"quick-attack":   1,
	"shadow-sneak":   1,
	"sucker-punch":   1,
	"water-shuriken": 1,
	"accelerock":     1,
	"jet-punch":      1,
	"vacuum-wave":    1,
	"grassy-glide":   1,

	"vital-throw": -1,

	"focus-punch": -3,
	"shell-trap":  -3,
	"beak-blast":  -3,

	"avalanche": -4,
	"revenge":   -4,

	"after-you": -5,

	"counter":      -6,
	"mirror-coat":  -6,
	"metal-burst":  -6,
	"roar":         -6,
	"whirlwind":    -6,
	"dragon-tail":  -6,
	"circle-throw": -6,

	"trick-room": -7,
	"teleport":   -7,
}

var protectionMoves = []string{
	"protect", "detect", "endure", "kings-shield", "spiky-shield",
	"baneful-bunker", "silk-trap", "burning-bulwark", "obstruct", "max-guard",
}

var supportMoves = []string{
	"helping-hand", "quick-guard", "wide-guard", "crafty-shield",
	"mat-block", "after-you", "trick-room",
}

var triageMoves = []string{
	"drain-punch", "giga-drain", "draining-kiss", "leech-life",
	"horn-leech", "oblivion-wing", "parabolic-charge", "absorb",
	"mega-drain", "strength-sap",
}

var fakeOutUsers = []string{
	"incineroar", "rillaboom", "mienshao", "hitmontop", "ambipom",
	"persian", "persian-alola", "weavile", "scrafty", "ludicolo",
	"kangaskhan", "infernape", "medicham", "lopunny", "mienfoo",
	"sneasel", "sneasel-hisui", "meowth", "meowth-alola", "meowth-galar",
}

// PriorityContext carries the battle state that can bend a move out of
// its printed bracket.
type PriorityContext struct {
	Ability   string
	Terrain   int
	IsStatus  bool
	MoveType  string
	HpPercent float64
}

// MovePriority resolves a move's effective priority bracket. Grassy
// Glide only has priority on Grassy Terrain, Prankster lifts status
// moves, Gale Wings lifts Flying moves at full HP and Triage lifts
// draining attacks.
func MovePriority(moveName string, ctx PriorityContext) int {
	normalized := NormalizeName(moveName)
	basePriority := priorityMoves[normalized]

	if normalized == "grassy-glide" {
		if ctx.Terrain == TERRAIN_GRASSY {
			return 1
		}
		return 0
	}

	ability := NormalizeAbility(ctx.Ability)

	if ability == "prankster" && ctx.IsStatus {
		return basePriority + 1
	}

	if ability == "gale-wings" && ctx.MoveType == TYPENAME_FLYING && ctx.HpPercent >= 100 {
		return basePriority + 1
	}

	if ability == "triage" && lo.Contains(triageMoves, normalized) {
		return basePriority + 3
	}

	return basePriority
}

// TurnSlot is one side of a turn order question.
type TurnSlot struct {
	Name     string
	MoveName string
	Speed    int
	Ability  string
	IsStatus bool
}

// TurnOrderResult explains who acts first and why. FirstMover holds a
// name, or "50/50" when a speed tie leaves it to the coin.
type TurnOrderResult struct {
	Slot1      TurnSlot
	Slot2      TurnSlot
	Priority1  int
	Priority2  int
	FirstMover string
	Reason     string
	SpeedTie   bool
	TrickRoom  bool
}

// ResolveTurnOrder decides move order from priority brackets first,
// then speed, with Trick Room flipping the speed comparison only.
// Priority brackets are never affected by Trick Room.
func ResolveTurnOrder(slot1, slot2 TurnSlot, terrain int, trickRoom bool) TurnOrderResult {
	priority1 := MovePriority(slot1.MoveName, PriorityContext{
		Ability:   slot1.Ability,
		Terrain:   terrain,
		IsStatus:  slot1.IsStatus,
		HpPercent: 100,
	})
	priority2 := MovePriority(slot2.MoveName, PriorityContext{
		Ability:   slot2.Ability,
		Terrain:   terrain,
		IsStatus:  slot2.IsStatus,
		HpPercent: 100,
	})

	var first, reason string
	speedTie := false

	switch {
	case priority1 > priority2:
		first = slot1.Name
		reason = fmt.Sprintf("%s has higher priority (%d vs %d)", slot1.MoveName, priority1, priority2)
	case priority2 > priority1:
		first = slot2.Name
		reason = fmt.Sprintf("%s has higher priority (%d vs %d)", slot2.MoveName, priority2, priority1)
	case trickRoom:
		switch {
		case slot1.Speed < slot2.Speed:
			first = slot1.Name
			reason = fmt.Sprintf("Slower in Trick Room (%d vs %d)", slot1.Speed, slot2.Speed)
		case slot2.Speed < slot1.Speed:
			first = slot2.Name
			reason = fmt.Sprintf("Slower in Trick Room (%d vs %d)", slot2.Speed, slot1.Speed)
		default:
			first = "50/50"
			reason = fmt.Sprintf("Speed tie in Trick Room (%d)", slot1.Speed)
			speedTie = true
		}
	default:
		switch {
		case slot1.Speed > slot2.Speed:
			first = slot1.Name
			reason = fmt.Sprintf("Faster (%d vs %d)", slot1.Speed, slot2.Speed)
		case slot2.Speed > slot1.Speed:
			first = slot2.Name
			reason = fmt.Sprintf("Faster (%d vs %d)", slot2.Speed, slot1.Speed)
		default:
			first = "50/50"
			reason = fmt.Sprintf("Speed tie (%d)", slot1.Speed)
			speedTie = true
		}
	}

	return TurnOrderResult{
		Slot1:      slot1,
		Slot2:      slot2,
		Priority1:  priority1,
		Priority2:  priority2,
		FirstMover: first,
		Reason:     reason,
		SpeedTie:   speedTie,
		TrickRoom:  trickRoom,
	}
}

// PriorityMoveInfo describes one priority move for team review.
type PriorityMoveInfo struct {
	Move        string
	Priority    int
	Category    string
	Description string
}

// CategorizeMove classifies a move by what its priority bracket is for.
func CategorizeMove(moveName string) PriorityMoveInfo {
	normalized := NormalizeName(moveName)
	priority := priorityMoves[normalized]

	var category, description string
	switch {
	case lo.Contains(protectionMoves, normalized):
		category = "defensive"
		description = "Protection move - blocks incoming attacks"
	case lo.Contains(supportMoves, normalized):
		category = "support"
		description = "Support move - helps team"
	case priority > 0:
		category = "offensive"
		description = fmt.Sprintf("Priority %d attacking move", priority)
	case priority < 0:
		category = "delayed"
		description = "Negative priority move (moves later)"
	default:
		category = "normal"
		description = "Standard priority"
	}

	return PriorityMoveInfo{
		Move:        moveName,
		Priority:    priority,
		Category:    category,
		Description: description,
	}
}

// TeamPriorityMoves picks out every priority move across a team's
// movesets, keyed by the holder.
func TeamPriorityMoves(teamMoves map[string][]string) map[string][]PriorityMoveInfo {
	results := make(map[string][]PriorityMoveInfo)

	for pokemon, moves := range teamMoves {
		var found []PriorityMoveInfo
		for _, move := range moves {
			if _, ok := priorityMoves[NormalizeName(move)]; ok {
				found = append(found, CategorizeMove(move))
			}
		}

		if len(found) > 0 {
			results[pokemon] = found
		}
	}

	return results
}

// MovesAtBracket lists every known move in one priority bracket,
// sorted for stable output.
func MovesAtBracket(bracket int) []string {
	moves := make([]string, 0, 8)
	for move, priority := range priorityMoves {
		if priority == bracket {
			moves = append(moves, move)
		}
	}
	sort.Strings(moves)

	return moves
}

// PriorityBracket is one bracket with its known moves.
type PriorityBracket struct {
	Priority int
	Moves    []string
}

// PriorityBrackets summarizes the whole table, highest bracket first.
func PriorityBrackets() []PriorityBracket {
	byPriority := make(map[int][]string)
	for move, priority := range priorityMoves {
		byPriority[priority] = append(byPriority[priority], move)
	}

	priorities := lo.Keys(byPriority)
	sort.Sort(sort.Reverse(sort.IntSlice(priorities)))

	brackets := make([]PriorityBracket, 0, len(priorities))
	for _, priority := range priorities {
		moves := byPriority[priority]
		sort.Strings(moves)
		brackets = append(brackets, PriorityBracket{Priority: priority, Moves: moves})
	}

	return brackets
}

// FakeOutMatchup is the speed race between two Fake Out users on turn
// one.
type FakeOutMatchup struct {
	OpponentHasFakeOut bool
	YourSpeed          int
	OpponentSpeed      int
	TrickRoom          bool
	Result             string
	Message            string
}

// AnalyzeFakeOut works out which Fake Out lands first, if the opponent
// is a known Fake Out user at all.
func AnalyzeFakeOut(yourSpeed int, opponentName string, opponentSpeed int, trickRoom bool) FakeOutMatchup {
	if !lo.Contains(fakeOutUsers, NormalizeName(opponentName)) {
		return FakeOutMatchup{
			Message: fmt.Sprintf("%s cannot use Fake Out", opponentName),
		}
	}

	var result string
	if trickRoom {
		switch {
		case yourSpeed < opponentSpeed:
			result = "You Fake Out first (slower in TR)"
		case opponentSpeed < yourSpeed:
			result = "Opponent Fake Outs first (slower in TR)"
		default:
			result = "Speed tie - 50/50"
		}
	} else {
		switch {
		case yourSpeed > opponentSpeed:
			result = "You Fake Out first (faster)"
		case opponentSpeed > yourSpeed:
			result = "Opponent Fake Outs first (faster)"
		default:
			result = "Speed tie - 50/50"
		}
	}

	return FakeOutMatchup{
		OpponentHasFakeOut: true,
		YourSpeed:          yourSpeed,
		OpponentSpeed:      opponentSpeed,
		TrickRoom:          trickRoom,
		Result:             result,
		Message:            fmt.Sprintf("Both Pokemon have Fake Out. %s", result),
	}
}

// PranksterImmune reports whether the target shrugs off a move that
// only has priority because of Prankster. Dark types do.
func PranksterImmune(target Battler, boostedByPrankster bool) bool {
	if !boostedByPrankster {
		return false
	}

	return lo.Contains(currentTypeNames(target), TYPENAME_DARK)
}
