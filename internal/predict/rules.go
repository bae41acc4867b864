package predict

import (
	"minichem/internal/mechanism"
	"minichem/internal/substance"
)

// Restrictions run on products; a nil check means the rule always
// proceeds.
var (
	weakElectrolyte = &restriction{
		name: "weak electrolyte",
		check: func(set *mechanism.Set, products []substance.Particle) (bool, error) {
			return set.HasWeakElectrolyte(products...), nil
		},
	}

	metalActivity = &restriction{
		name: "metal activity",
		check: func(set *mechanism.Set, products []substance.Particle) (bool, error) {
			return set.SubstitutionAllowed(products...)
		},
	}

	activeMetalWater = &restriction{
		name: "metal and water",
		check: func(set *mechanism.Set, products []substance.Particle) (bool, error) {
			return set.BaseMetalIsActive(products...)
		},
	}

	weakElectrolyteIons = &restriction{
		name: "weak electrolyte",
		check: func(set *mechanism.Set, products []substance.Particle) (bool, error) {
			return set.HasWeakElectrolyteIons(products...), nil
		},
	}
)

// molecularRules is the decision table of the molecular algorithm.
// Rules match unordered reagent kind pairs; decompositions carry
// KindNone in the second slot.
func molecularRules() []rule {
	salts := []Kind{KindBinarySalt, KindTernarySalt, KindNitrate}
	acids := []Kind{KindBinaryAcid, KindTernaryAcid}
	oxides := []Kind{KindBasicOxide, KindAmphotericOxide, KindAcidicOxide}

	rules := []rule{
		// binary substances fall apart into simples
		{a: KindWater, b: KindNone, category: CategoryDecomposition, run: runSimpleDecomposition},
		{a: KindBinarySalt, b: KindNone, category: CategoryDecomposition, run: runSimpleDecomposition},
		{a: KindBinaryAcid, b: KindNone, category: CategoryDecomposition, run: runSimpleDecomposition},

		// ternary substances fall apart into oxides, nitrates are exceptional
		{a: KindTernarySalt, b: KindNone, category: CategoryDecomposition, run: runComplexDecomposition},
		{a: KindTernaryAcid, b: KindNone, category: CategoryDecomposition, run: runComplexDecomposition},
		{a: KindBase, b: KindNone, category: CategoryDecomposition, run: runComplexDecomposition},
		{a: KindNitrate, b: KindNone, category: CategoryDecomposition, run: runNitrateDecomposition},

		// simple substances combine
		{a: KindMetal, b: KindNonmetal, category: CategoryAddition, run: runSimpleAddition},
		{a: KindNonmetal, b: KindNonmetal, category: CategoryAddition, run: runSimpleAddition},

		// oxides react with water and with each other
		{a: KindWater, b: KindAcidicOxide, category: CategoryAddition, run: runComplexAddition},
		{a: KindWater, b: KindBasicOxide, category: CategoryAddition, run: runComplexAddition, restrict: activeMetalWater},
		{a: KindBasicOxide, b: KindAcidicOxide, category: CategoryNeutralization, run: runComplexNeutralization},

		// only active metals displace hydrogen from water
		{a: KindMetal, b: KindWater, category: CategorySubstitution, run: runSimpleSubstitution, restrict: activeMetalWater},
	}

	for _, oxide := range oxides {
		rules = append(rules, rule{a: oxide, b: KindNone, category: CategoryDecomposition, run: runSimpleDecomposition})
	}

	for i, salt := range salts {
		for _, other := range salts[i:] {
			rules = append(rules, rule{a: salt, b: other, category: CategoryExchange, run: runSimpleExchange, restrict: weakElectrolyte})
		}
		rules = append(rules, rule{a: salt, b: KindBase, category: CategoryExchange, run: runSimpleExchange, restrict: weakElectrolyte})
		for _, acid := range acids {
			rules = append(rules, rule{a: salt, b: acid, category: CategoryExchange, run: runSimpleExchange, restrict: weakElectrolyte})
		}
		rules = append(rules, rule{a: KindMetal, b: salt, category: CategorySubstitution, run: runSimpleSubstitution, restrict: metalActivity})
	}

	for _, acid := range acids {
		rules = append(rules,
			rule{a: acid, b: KindBase, category: CategoryExchange, run: runSimpleExchange, restrict: weakElectrolyte},
			rule{a: KindMetal, b: acid, category: CategorySubstitution, run: runSimpleSubstitution, restrict: metalActivity},
			rule{a: acid, b: KindBasicOxide, category: CategoryNeutralization, run: runComplexNeutralization},
		)
	}
	// nitric acid neutralizes basic oxides like any ternary acid
	rules = append(rules, rule{a: KindNitrate, b: KindBasicOxide, category: CategoryNeutralization, run: runComplexNeutralization})

	return rules
}

// ionicRules is the decision table of the ionic algorithm.
func ionicRules() []rule {
	return []rule{
		{a: KindIon, b: KindIon, category: CategoryAddition, run: runIonicAddition, restrict: weakElectrolyteIons},
		{a: KindIon, b: KindMolecule, category: CategoryExchange, run: runIonPicking, restrict: weakElectrolyteIons},
		{a: KindIon, b: KindIonGroup, category: CategoryExchange, run: runPickOrAdd, restrict: weakElectrolyteIons},
		{a: KindIonGroup, b: KindMolecule, category: CategoryExchange, run: runIonicExchange, restrict: weakElectrolyteIons},
		{a: KindIonGroup, b: KindIonGroup, category: CategoryExchange, run: runIonicExchange, restrict: weakElectrolyteIons},
		{a: KindMolecule, b: KindNone, category: CategoryDecomposition, run: runIonicDecomposition},
		{a: KindIonGroup, b: KindNone, category: CategoryDecomposition, run: runIonicDecomposition},
	}
}

func oneMolecule(reagents []substance.Particle) (substance.Molecule, error) {
	m, ok := reagents[0].(substance.Molecule)
	if !ok {
		return substance.Molecule{}, &UnclassifiableError{Formula: reagents[0].Formula()}
	}
	return m, nil
}

func twoMolecules(reagents []substance.Particle) (substance.Molecule, substance.Molecule, error) {
	a, ok := reagents[0].(substance.Molecule)
	if !ok {
		return substance.Molecule{}, substance.Molecule{}, &UnclassifiableError{Formula: reagents[0].Formula()}
	}
	b, ok := reagents[1].(substance.Molecule)
	if !ok {
		return substance.Molecule{}, substance.Molecule{}, &UnclassifiableError{Formula: reagents[1].Formula()}
	}
	return a, b, nil
}

func runSimpleAddition(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	a, ok := reagents[0].(substance.Simple)
	if !ok {
		return nil, &UnclassifiableError{Formula: reagents[0].Formula()}
	}
	b, ok := reagents[1].(substance.Simple)
	if !ok {
		return nil, &UnclassifiableError{Formula: reagents[1].Formula()}
	}
	m, err := set.SimpleAddition(a, b)
	if err != nil {
		return nil, err
	}
	return []substance.Particle{m}, nil
}

func runSimpleDecomposition(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	m, err := oneMolecule(reagents)
	if err != nil {
		return nil, err
	}
	cation, anion, err := mechanism.SimpleDecomposition(m)
	if err != nil {
		return nil, err
	}
	return []substance.Particle{cation, anion}, nil
}

func runSimpleSubstitution(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	displaced, product, err := mechanism.SimpleSubstitution(reagents[0], reagents[1])
	if err != nil {
		return nil, err
	}
	return []substance.Particle{displaced, product}, nil
}

func runSimpleExchange(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	a, b, err := twoMolecules(reagents)
	if err != nil {
		return nil, err
	}
	first, second, err := mechanism.SimpleExchange(a, b)
	if err != nil {
		return nil, err
	}
	return []substance.Particle{first, second}, nil
}

func runComplexDecomposition(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	m, err := oneMolecule(reagents)
	if err != nil {
		return nil, err
	}
	first, second, err := set.ComplexDecomposition(m)
	if err != nil {
		return nil, err
	}
	return []substance.Particle{first, second}, nil
}

func runComplexAddition(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	a, b, err := twoMolecules(reagents)
	if err != nil {
		return nil, err
	}
	product, err := set.ComplexAddition(a, b)
	if err != nil {
		return nil, err
	}
	return []substance.Particle{product}, nil
}

func runComplexNeutralization(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	a, b, err := twoMolecules(reagents)
	if err != nil {
		return nil, err
	}
	molecules, err := set.ComplexNeutralization(a, b)
	if err != nil {
		return nil, err
	}
	products := make([]substance.Particle, len(molecules))
	for i, m := range molecules {
		products[i] = m
	}
	return products, nil
}

func runNitrateDecomposition(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	m, err := oneMolecule(reagents)
	if err != nil {
		return nil, err
	}
	return set.NitrateDecomposition(m)
}

func runIonicAddition(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	product, err := mechanism.IonicAddition(reagents[0], reagents[1])
	if err != nil {
		return nil, err
	}
	return []substance.Particle{product}, nil
}

func runIonicDecomposition(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	first, second, err := mechanism.IonicDecomposition(reagents[0])
	if err != nil {
		return nil, err
	}
	return []substance.Particle{first, second}, nil
}

func runIonPicking(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	joined, rest, err := mechanism.IonPicking(reagents[0], reagents[1])
	if err != nil {
		return nil, err
	}
	return []substance.Particle{joined, rest}, nil
}

func runIonicExchange(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	acidRest, baseRest, water, err := mechanism.IonicExchange(reagents[0], reagents[1])
	if err != nil {
		return nil, err
	}
	return []substance.Particle{acidRest, baseRest, water}, nil
}

func runPickOrAdd(set *mechanism.Set, reagents []substance.Particle) ([]substance.Particle, error) {
	i, ok := reagents[0].(substance.Ion)
	g, gok := reagents[1].(substance.IonGroup)
	if !ok || !gok {
		i, ok = reagents[1].(substance.Ion)
		g, gok = reagents[0].(substance.IonGroup)
		if !ok || !gok {
			return nil, &UnclassifiableError{Formula: reagents[0].Formula()}
		}
	}
	return mechanism.PickOrAdd(i, g)
}
