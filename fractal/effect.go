package fractal

import (
	"fmt"
	"sort"
	"strings"
)

// Effect is a processing block type. The same Effect set is shared by both
// dialects, but each dialect numbers it differently on the wire.
type Effect int

type effectID struct {
	id     uint32
	effect Effect
}

type effectCatalog struct {
	byID     map[uint32]Effect
	byEffect map[Effect]uint32
	ids      []uint32
}

var catalogs [2]effectCatalog

var effectsByName = make(map[string]Effect, numEffects)

func init() {
	for d, table := range map[Dialect][]effectID{
		DialectII:  effectIDsII,
		DialectIII: effectIDsIII,
	} {
		c := effectCatalog{
			byID:     make(map[uint32]Effect, len(table)),
			byEffect: make(map[Effect]uint32, len(table)),
		}
		for _, row := range table {
			c.byID[row.id] = row.effect
			c.byEffect[row.effect] = row.id
			c.ids = append(c.ids, row.id)
		}
		sort.Slice(c.ids, func(i, j int) bool { return c.ids[i] < c.ids[j] })
		catalogs[d] = c
	}

	for e := EffectUnknown; e < numEffects; e++ {
		effectsByName[strings.ToLower(effectNames[e])] = e
	}
}

// IDForEffect returns the wire id of effect in dialect d. The second result
// is false when the dialect has no such block; 0 is never returned as an id
// for a known effect.
func IDForEffect(d Dialect, effect Effect) (uint32, bool) {
	id, ok := catalogs[d].byEffect[effect]
	return id, ok
}

// EffectForID resolves a wire id in dialect d. Unrecognized ids resolve to
// EffectUnknown.
func EffectForID(d Dialect, id uint32) Effect {
	if e, ok := catalogs[d].byID[id]; ok {
		return e
	}
	return EffectUnknown
}

// EffectIDs lists every wire id known in dialect d, ascending.
func EffectIDs(d Dialect) []uint32 {
	return append([]uint32(nil), catalogs[d].ids...)
}

func (e Effect) String() string {
	if e < 0 || e >= numEffects {
		return fmt.Sprintf("Effect(%d)", int(e))
	}
	return effectNames[e]
}

// ParseEffect resolves a name as printed by String, ignoring case.
func ParseEffect(name string) (Effect, error) {
	e, ok := effectsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return EffectUnknown, fmt.Errorf("unknown effect %q", name)
	}
	return e, nil
}

func (e Effect) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Effect) UnmarshalText(text []byte) error {
	v, err := ParseEffect(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}
