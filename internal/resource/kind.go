package resource

type Kind int

const (
	Editor Kind = iota
	Document
)

func (k Kind) String() string {
	return [...]string{
		"ed",
		"doc",
	}[k]
}
