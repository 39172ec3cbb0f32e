package jettons

// Collection is the ordered, deduplicated aggregate of validated records.
// Keys are compared with Key, so every encoding of an address is one entry.
type Collection struct {
	records []Record
	index   map[string]int
}

// MergeResult reports what a Merge call did.
type MergeResult struct {
	Added   []Record
	Skipped []Record
}

// NewCollection builds a collection from records, keeping the first record
// seen for any key.
func NewCollection(records ...Record) *Collection {
	c := &Collection{index: make(map[string]int, len(records))}
	c.Merge(records)
	return c
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}

// Contains reports whether a record with the given address is present.
func (c *Collection) Contains(address string) bool {
	_, ok := c.index[Key(address)]
	return ok
}

// Get returns the record stored under address.
func (c *Collection) Get(address string) (Record, bool) {
	i, ok := c.index[Key(address)]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// Records returns a copy of the records in collection order. The result is
// never nil.
func (c *Collection) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Merge appends every record whose key is not already present, either from
// earlier contents or from an earlier element of records. Existing entries
// keep their position and new ones append in input order.
func (c *Collection) Merge(records []Record) MergeResult {
	if c.index == nil {
		c.index = make(map[string]int, len(records))
	}

	var result MergeResult
	for _, rec := range records {
		key := rec.Key()
		if _, dup := c.index[key]; dup {
			result.Skipped = append(result.Skipped, rec)
			continue
		}
		c.index[key] = len(c.records)
		c.records = append(c.records, rec)
		result.Added = append(result.Added, rec)
	}
	return result
}
