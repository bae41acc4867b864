package substance

// Class is the school substance classification of a Simple or Molecule.
type Class string

const (
	ClassMetal    Class = "metal"
	ClassNonmetal Class = "nonmetal"
	ClassAcid     Class = "acid"
	ClassBase     Class = "base"
	ClassOxide    Class = "oxide"
	ClassSalt     Class = "salt"
)

// Subclass refines Class for reaction prediction. For everything but
// oxides the subclass equals the class; oxides split into basic,
// amphoteric and acidic.
type Subclass string

const (
	SubclassMetal           Subclass = "metal"
	SubclassNonmetal        Subclass = "nonmetal"
	SubclassAcid            Subclass = "acid"
	SubclassBase            Subclass = "base"
	SubclassSalt            Subclass = "salt"
	SubclassBasicOxide      Subclass = "basic oxide"
	SubclassAmphotericOxide Subclass = "amphoteric oxide"
	SubclassAcidicOxide     Subclass = "acidic oxide"
)

// Classifier is implemented by particles with a school classification.
type Classifier interface {
	Particle
	Class() Class
}
