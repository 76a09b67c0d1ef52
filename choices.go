package inquire

// Choice is one selectable option for a list question.
type Choice struct {
	Key   string // dedup key (defaults to Name)
	Name  string // display text
	Value any    // answer value (defaults to Name)
}

// key returns the deduplication key for the choice.
func (c Choice) key() string {
	if c.Key != "" {
		return c.Key
	}
	return c.Name
}

// value returns the answer value submitted when the choice is picked.
func (c Choice) value() any {
	if c.Value != nil {
		return c.Value
	}
	return c.Name
}

// Choices is an ordered collection of options deduplicated by key and
// bound to the answer set it was resolved against. The answer set is
// read-only; it is kept so option predicates can consult earlier answers.
type Choices struct {
	items   []Choice
	answers Answers
}

// newChoices builds a bound collection from items, keeping the first
// occurrence of each key and preserving order.
func newChoices(items []Choice, answers Answers) *Choices {
	seen := make(map[string]struct{}, len(items))
	kept := make([]Choice, 0, len(items))
	for _, c := range items {
		k := c.key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, c)
	}
	return &Choices{items: kept, answers: answers}
}

// Len returns the number of choices.
func (cs *Choices) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.items)
}

// At returns the choice at index i. It panics when i is out of range,
// matching slice semantics.
func (cs *Choices) At(i int) Choice {
	return cs.items[i]
}

// Find returns the choice with the given key and whether it exists.
func (cs *Choices) Find(key string) (Choice, bool) {
	if cs == nil {
		return Choice{}, false
	}
	for _, c := range cs.items {
		if c.key() == key {
			return c, true
		}
	}
	return Choice{}, false
}

// Names returns the display texts in order.
func (cs *Choices) Names() []string {
	if cs == nil {
		return nil
	}
	names := make([]string, len(cs.items))
	for i, c := range cs.items {
		names[i] = c.Name
	}
	return names
}
