package common

type Identifier struct {
	Value string
}

func (i Identifier) String() string {
	return i.Value
}

func NewIdentifier(name string) Identifier {
	return Identifier{name}
}

func CompareIdentifiers(a, b Identifier) int {
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	default:
		return 0
	}
}
