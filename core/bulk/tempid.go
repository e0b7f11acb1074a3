package bulk

// Kind is the entity namespace a temporary id belongs to. The remote
// platform requires temp ids to be unique per resource-type namespace within
// one request, so each kind counts down from its own seed.
type Kind int

const (
	KindBudget Kind = iota
	KindCampaign
	KindAssetGroup
	KindAsset
	KindSitelink
)

// Seeds are distinct per kind so ids never collide even if a namespace is
// shared on the remote side.
var seeds = map[Kind]int64{
	KindBudget:     -1000,
	KindCampaign:   -2000,
	KindAssetGroup: -3000,
	KindAsset:      -4000,
	KindSitelink:   -5000,
}

// Allocator issues negative temporary ids for intra-batch forward
// references. It is scoped to a single batch-processing invocation and must
// never be shared across concurrent batches; create one per invocation
// instead of holding a process-wide instance.
type Allocator struct {
	counters map[Kind]int64
}

// NewAllocator returns an allocator with every kind at its seed value.
func NewAllocator() *Allocator {
	counters := make(map[Kind]int64, len(seeds))
	for kind, seed := range seeds {
		counters[kind] = seed
	}
	return &Allocator{counters: counters}
}

// Next returns the next temporary id for the kind. Ids decrease
// monotonically and are never reused within the allocator's lifetime.
func (a *Allocator) Next(kind Kind) int64 {
	id := a.counters[kind]
	a.counters[kind] = id - 1
	return id
}
