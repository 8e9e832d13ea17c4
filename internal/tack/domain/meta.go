package domain

// Option is one {label, value} entry of an enumeration.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Enumerations are the value sets clients render in pickers.
type Enumerations struct {
	Roles             []Option `json:"roles"`
	CardStatuses      []Option `json:"cardStatuses"`
	CardPriorities    []Option `json:"cardPriorities"`
	BoardVisibilities []Option `json:"boardVisibilities"`
}
