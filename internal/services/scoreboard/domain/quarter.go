package domain

// QuarterCount is the number of input regions on the playmat.
const QuarterCount = 4

// Quarter identifies one of the four fixed playmat regions.
type Quarter int

// Team identifies one of the two diagonal partnerships.
type Team int

const (
	TeamA Team = 0
	TeamB Team = 1
)

// TeamCount is the number of teams.
const TeamCount = 2

// Point values per tap.
const (
	PointValueSingle = 1
	PointValueFive   = 5
)

type quarterInfo struct {
	team     Team
	value    int
	nearSide bool
}

// Quarters 0 and 1 sit on the near half of the device and are drawn rotated.
// Diagonal quarters share a team; each team has one five-point quarter and one
// single-point quarter.
var quarterTable = [QuarterCount]quarterInfo{
	0: {team: TeamA, value: PointValueFive, nearSide: true},
	1: {team: TeamB, value: PointValueFive, nearSide: true},
	2: {team: TeamB, value: PointValueSingle},
	3: {team: TeamA, value: PointValueSingle},
}

// Quarters returns every quarter in index order.
func Quarters() []Quarter {
	return []Quarter{0, 1, 2, 3}
}

// Validate reports whether q names a playmat quarter.
func (q Quarter) Validate() error {
	if q < 0 || int(q) >= QuarterCount {
		return quarterOutOfRangeError(q)
	}
	return nil
}

// Team returns the team that scores from q. It panics for invalid quarters;
// use TeamOf for unchecked input.
func (q Quarter) Team() Team {
	return quarterTable[q].team
}

// PointValue returns the points added per tap on q. It panics for invalid
// quarters; use PointValueOf for unchecked input.
func (q Quarter) PointValue() int {
	return quarterTable[q].value
}

// IsSinglePoint reports whether q is worth one point per tap.
func (q Quarter) IsSinglePoint() bool {
	return quarterTable[q].value == PointValueSingle
}

// IsNearSide reports whether q is on the rotated half of the device.
func (q Quarter) IsNearSide() bool {
	return quarterTable[q].nearSide
}

// TeamOf maps a quarter to its team.
func TeamOf(q Quarter) (Team, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	return q.Team(), nil
}

// PointValueOf maps a quarter to its per-tap point value.
func PointValueOf(q Quarter) (int, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	return q.PointValue(), nil
}

// Other returns the opposing team.
func (t Team) Other() Team {
	return 1 - t
}

// Valid reports whether t is TeamA or TeamB.
func (t Team) Valid() bool {
	return t == TeamA || t == TeamB
}
