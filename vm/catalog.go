package vm

// BlockCatalog is the external content-catalog interface the core consumes
// (spec §6 "Block catalog (consumed)"). Loading the actual game catalogs is
// out of scope for this package; callers supply an implementation (or use
// FixtureCatalog for tests and the cmd/logicvm demo).
type BlockCatalog interface {
	BlockCount() int
	BlockName(i int) (string, bool)
	ItemCount() int
	ItemName(i int) (string, bool)
	LiquidCount() int
	LiquidName(i int) (string, bool)
	UnitCount() int
	UnitName(i int) (string, bool)
}

// lookupContent implements the `lookup` instruction's catalog indexing
// (spec §4.2): out-of-range indices yield ok=false, which the evaluator
// turns into Null.
func lookupContent(cat BlockCatalog, kind ContentKind, index int) (Content, bool) {
	var name string
	var ok bool
	switch kind {
	case ContentBlock:
		name, ok = cat.BlockName(index)
	case ContentItem:
		name, ok = cat.ItemName(index)
	case ContentLiquid:
		name, ok = cat.LiquidName(index)
	case ContentUnit:
		name, ok = cat.UnitName(index)
	}
	if !ok {
		return Content{}, false
	}
	return Content{Kind: kind, ID: index, Name: name}, true
}

func catalogCount(cat BlockCatalog, kind ContentKind) int {
	switch kind {
	case ContentBlock:
		return cat.BlockCount()
	case ContentItem:
		return cat.ItemCount()
	case ContentLiquid:
		return cat.LiquidCount()
	case ContentUnit:
		return cat.UnitCount()
	default:
		return 0
	}
}

// teamTable implements the fixed 0..255 team index space (spec §6 "Team
// table"): a handful of well-known teams at low indices, Unknown(i)
// elsewhere.
type teamTable struct {
	known []string // index -> name, for indices < len(known)
}

func newTeamTable() *teamTable {
	return &teamTable{known: []string{
		"derelict", "sharded", "crux", "legacy", "malis", "green",
	}}
}

func (t *teamTable) lookup(index int) (Team, bool) {
	if index < 0 || index > 255 {
		return Team{}, false
	}
	if index < len(t.known) {
		return KnownTeam(t.known[index], uint8(index)), true
	}
	return UnknownTeam(uint8(index)), true
}

// FixtureCatalog is a small in-memory BlockCatalog, used by tests and the
// cmd/logicvm demo binary in place of the real (out-of-scope) game catalog
// loader.
type FixtureCatalog struct {
	Blocks, Items, Liquids, Units []string
}

func (c *FixtureCatalog) BlockCount() int  { return len(c.Blocks) }
func (c *FixtureCatalog) ItemCount() int   { return len(c.Items) }
func (c *FixtureCatalog) LiquidCount() int { return len(c.Liquids) }
func (c *FixtureCatalog) UnitCount() int   { return len(c.Units) }

func (c *FixtureCatalog) BlockName(i int) (string, bool)  { return indexName(c.Blocks, i) }
func (c *FixtureCatalog) ItemName(i int) (string, bool)   { return indexName(c.Items, i) }
func (c *FixtureCatalog) LiquidName(i int) (string, bool) { return indexName(c.Liquids, i) }
func (c *FixtureCatalog) UnitName(i int) (string, bool)   { return indexName(c.Units, i) }

func indexName(names []string, i int) (string, bool) {
	if i < 0 || i >= len(names) {
		return "", false
	}
	return names[i], true
}
