package mechanism

import (
	"minichem/internal/ptable"
	"minichem/internal/substance"
)

// IonicDecomposition performs one dissociation step. Salts split into
// their two ions, acids shed one proton, bases one hydroxide, and ion
// groups continue dissociating toward their defining ion.
func IonicDecomposition(p substance.Particle) (substance.Particle, substance.Particle, error) {
	switch v := p.(type) {
	case substance.Molecule:
		switch {
		case v.IsWater():
			return substance.Proton, substance.Hydroxide, nil
		case v.Class() == substance.ClassAcid:
			rest, err := substance.RemoveGroup(v)
			if err != nil {
				return nil, nil, err
			}
			return substance.Proton, rest, nil
		case v.Class() == substance.ClassBase:
			rest, err := substance.RemoveGroup(v)
			if err != nil {
				return nil, nil, err
			}
			return substance.Hydroxide, rest, nil
		case v.Class() == substance.ClassSalt:
			return v.Cation(), v.Anion(), nil
		default:
			return nil, nil, &ClassError{
				Formula: v.Formula(),
				Got:     string(v.Class()),
				Want:    "acid, base, salt or water",
			}
		}

	case substance.IonGroup:
		rest, err := substance.RemoveGroup(v)
		if err != nil {
			return nil, nil, err
		}
		if v.Kind() == substance.GroupAcid {
			return rest, v.Cation(), nil
		}
		return rest, v.Anion(), nil

	default:
		return nil, nil, cannotPredict("ionic decomposition", p)
	}
}

// IonicAddition joins two oppositely charged species into one. A
// proton meeting a multivalent anion (or a hydroxide meeting a
// multivalent cation) stops at an ion group; everything else closes
// into a neutral molecule.
func IonicAddition(a, b substance.Particle) (substance.Particle, error) {
	ai, aIsIon := a.(substance.Ion)
	bi, bIsIon := b.(substance.Ion)

	switch {
	case aIsIon && bIsIon:
		var cation, anion substance.Ion
		switch {
		case ai.IsCation() && bi.IsAnion():
			cation, anion = ai, bi
		case bi.IsCation() && ai.IsAnion():
			cation, anion = bi, ai
		default:
			return nil, cannotPredict("ionic addition", a, b)
		}

		switch {
		case cation.Equal(substance.Proton) && anion.Charge() < -1:
			return substance.NewIonGroup(anion, 1, 1)
		case anion.Equal(substance.Hydroxide) && cation.Charge() > 1:
			return substance.NewIonGroup(cation, 1, 1)
		default:
			return substance.NewMolecule(cation, anion)
		}

	case aIsIon:
		g, ok := b.(substance.IonGroup)
		if !ok {
			return nil, cannotPredict("ionic addition", a, b)
		}
		return ionPlusGroup(ai, g)

	case bIsIon:
		g, ok := a.(substance.IonGroup)
		if !ok {
			return nil, cannotPredict("ionic addition", a, b)
		}
		return ionPlusGroup(bi, g)

	default:
		return nil, cannotPredict("ionic addition", a, b)
	}
}

// ionPlusGroup joins a bare ion with an ion group. The complementary
// ion of the group's own family just deepens the group; any other
// counter-ion closes an acid group into a molecule. Base groups close
// only over hydroxide: their residue would need a polyatomic cation,
// which the model does not represent.
func ionPlusGroup(i substance.Ion, g substance.IonGroup) (substance.Particle, error) {
	if i.IsCation() == g.IsCation() {
		return nil, cannotPredict("ionic addition", i, g)
	}

	switch g.Kind() {
	case substance.GroupAcid:
		if i.Equal(substance.Proton) {
			return substance.AddGroup(g)
		}
		anion, err := groupAsIon(g)
		if err != nil {
			return nil, err
		}
		return substance.NewMolecule(i, anion)

	default: // base group
		if i.Equal(substance.Hydroxide) {
			return substance.AddGroup(g)
		}
		return nil, cannotPredict("ionic addition", i, g)
	}
}

// groupAsIon flattens an acid group into a plain anion, e.g.
// HSO4(-1). A leading hydrogen in the rest merges with the protons.
func groupAsIon(g substance.IonGroup) (substance.Ion, error) {
	parts := []substance.ElementCount{{Element: ptable.H, Count: g.CationIndex()}}
	for _, p := range g.Anion().Parts() {
		scaled := substance.ElementCount{Element: p.Element, Count: p.Count * g.AnionIndex()}
		if scaled.Element.Equal(parts[0].Element) {
			parts[0].Count += scaled.Count
			continue
		}
		parts = append(parts, scaled)
	}
	return substance.NewIon(parts, g.Charge())
}

// IonPicking lets a proton or hydroxide pick its counterpart out of a
// molecule or ion group: the picked pair joins into a new species and
// the rest of the host is returned as the second product. The
// reagents may come in either order.
func IonPicking(a, b substance.Particle) (substance.Particle, substance.Particle, error) {
	i, ok := b.(substance.Ion)
	if !ok {
		if i, ok = a.(substance.Ion); !ok {
			return nil, nil, cannotPredict("ion picking", a, b)
		}
		a = b
	}

	switch host := a.(type) {
	case substance.Molecule:
		return pickFrom(i, host.Cation(), host.Anion(), host.CationIndex(), host.AnionIndex())
	case substance.IonGroup:
		return pickFrom(i, host.Cation(), host.Anion(), host.CationIndex(), host.AnionIndex())
	default:
		return nil, nil, cannotPredict("ion picking", a, b)
	}
}

func pickFrom(i, cation, anion substance.Ion, cationIndex, anionIndex int) (substance.Particle, substance.Particle, error) {
	if i.IsCation() {
		joined, err := IonicAddition(i, anion)
		if err != nil {
			return nil, nil, err
		}
		if anionIndex > 1 {
			rest, err := substance.NewIonGroup(cation, cationIndex, anionIndex-1)
			if err != nil {
				return nil, nil, err
			}
			return joined, rest, nil
		}
		return joined, cation, nil
	}

	joined, err := IonicAddition(cation, i)
	if err != nil {
		return nil, nil, err
	}
	if cationIndex > 1 {
		rest, err := substance.NewIonGroup(anion, cationIndex-1, anionIndex)
		if err != nil {
			return nil, nil, err
		}
		return joined, rest, nil
	}
	return joined, anion, nil
}

// IonicExchange reacts an acid-descended species with a base-descended
// one: both shed complementary groups in lockstep until one side
// reaches a bare ion, and the shed protons and hydroxides leave as
// water. At least one side must be an ion group, otherwise the pair
// belongs to molecular exchange.
func IonicExchange(a, b substance.Particle) (substance.Particle, substance.Particle, substance.Molecule, error) {
	_, aGroup := a.(substance.IonGroup)
	_, bGroup := b.(substance.IonGroup)
	if !aGroup && !bGroup {
		return nil, nil, substance.Molecule{}, cannotPredict("ionic exchange", a, b)
	}

	ka, err := groupKindOf(a)
	if err != nil {
		return nil, nil, substance.Molecule{}, err
	}
	kb, err := groupKindOf(b)
	if err != nil {
		return nil, nil, substance.Molecule{}, err
	}
	if ka == kb {
		return nil, nil, substance.Molecule{}, &ClassError{
			Formula: a.Formula() + " and " + b.Formula(),
			Got:     string(ka) + " and " + string(kb),
			Want:    "one acid and one base",
		}
	}

	acidSide, baseSide := a, b
	if ka == substance.GroupBase {
		acidSide, baseSide = b, a
	}

	for {
		if _, ok := acidSide.(substance.Ion); ok {
			break
		}
		if _, ok := baseSide.(substance.Ion); ok {
			break
		}
		if acidSide, err = substance.RemoveGroup(acidSide); err != nil {
			return nil, nil, substance.Molecule{}, err
		}
		if baseSide, err = substance.RemoveGroup(baseSide); err != nil {
			return nil, nil, substance.Molecule{}, err
		}
	}
	return acidSide, baseSide, substance.Water, nil
}

// groupKindOf maps a molecule or ion group onto the acid/base family
// it dissociates within.
func groupKindOf(p substance.Particle) (substance.GroupKind, error) {
	switch v := p.(type) {
	case substance.Molecule:
		switch v.Class() {
		case substance.ClassAcid:
			return substance.GroupAcid, nil
		case substance.ClassBase:
			return substance.GroupBase, nil
		default:
			return "", &ClassError{Formula: v.Formula(), Got: string(v.Class()), Want: "acid or base"}
		}
	case substance.IonGroup:
		return v.Kind(), nil
	default:
		return "", cannotPredict("ionic exchange", p)
	}
}

// PickOrAdd decides what an ion does to an ion group: the proton and
// hydroxide pick their counterpart out of the opposite family's
// group, anything else just attaches.
func PickOrAdd(i substance.Ion, g substance.IonGroup) ([]substance.Particle, error) {
	own := substance.Hydroxide
	if g.Kind() == substance.GroupAcid {
		own = substance.Proton
	}
	waterLike := i.Equal(substance.Proton) || i.Equal(substance.Hydroxide)

	if waterLike && !i.Equal(own) {
		joined, rest, err := IonPicking(g, i)
		if err != nil {
			return nil, err
		}
		return []substance.Particle{joined, rest}, nil
	}

	joined, err := IonicAddition(i, g)
	if err != nil {
		return nil, err
	}
	return []substance.Particle{joined}, nil
}

// CompleteDissociation splits all given species down to bare ions and
// deduplicates the result.
func CompleteDissociation(particles ...substance.Particle) ([]substance.Ion, error) {
	queue := append([]substance.Particle(nil), particles...)
	var ions []substance.Ion

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if i, ok := p.(substance.Ion); ok {
			duplicate := false
			for _, seen := range ions {
				if seen.Equal(i) {
					duplicate = true
					break
				}
			}
			if !duplicate {
				ions = append(ions, i)
			}
			continue
		}

		first, second, err := IonicDecomposition(p)
		if err != nil {
			return nil, err
		}
		queue = append(queue, first, second)
	}
	return ions, nil
}
