package ptable

// The element data below follows a standard school periodic table.
// Molar masses are rounded the way school exercises round them.

func elem(symbol, name string, z, period int, group string, molarMass, ren float64) Element {
	return Element{Symbol: symbol, Name: name, AtomicNumber: z, Period: period, Group: group, MolarMass: molarMass, REN: ren}
}

func relem(symbol, name string, z, period int, group string, molarMass, ren float64) Element {
	e := elem(symbol, name, z, period, group, molarMass, ren)
	e.Radioactive = true
	return e
}

// Package-level element variables, one per element, in atomic-number order.
var (
	H  = elem("H", "Hydrogen", 1, 1, "1A", 1.01, 2.10)
	He = elem("He", "Helium", 2, 1, "8A", 4.0, -1)

	Li = elem("Li", "Lithium", 3, 2, "1A", 6.9, 0.98)
	Be = elem("Be", "Beryllium", 4, 2, "2A", 9.0, 1.75)
	B  = elem("B", "Boron", 5, 2, "3A", 10.8, 2.04)
	C  = elem("C", "Carbon", 6, 2, "4A", 12.0, 2.55)
	N  = elem("N", "Nitrogen", 7, 2, "5A", 14.0, 3.04)
	O  = elem("O", "Oxygen", 8, 2, "6A", 16.0, 3.44)
	F  = elem("F", "Fluorine", 9, 2, "7A", 19.0, 3.98)
	Ne = elem("Ne", "Neon", 10, 2, "8A", 20.2, -1)

	Na = elem("Na", "Sodium", 11, 3, "1A", 23.0, 0.93)
	Mg = elem("Mg", "Magnesium", 12, 3, "2A", 24.3, 1.31)
	Al = elem("Al", "Aluminium", 13, 3, "3A", 27.0, 1.61)
	Si = elem("Si", "Silicon", 14, 3, "4A", 28.1, 1.90)
	P  = elem("P", "Phosphorus", 15, 3, "5A", 31.0, 2.19)
	S  = elem("S", "Sulfur", 16, 3, "6A", 32.1, 2.58)
	Cl = elem("Cl", "Chlorine", 17, 3, "7A", 35.5, 3.16)
	Ar = elem("Ar", "Argon", 18, 3, "8A", 39.9, -1)

	K  = elem("K", "Potassium", 19, 4, "1A", 39.1, 0.82)
	Ca = elem("Ca", "Calcium", 20, 4, "2A", 40.1, 1.00)
	Sc = elem("Sc", "Scandium", 21, 4, "3B", 45.0, 1.36)
	Ti = elem("Ti", "Titanium", 22, 4, "4B", 47.9, 1.54)
	V  = elem("V", "Vanadium", 23, 4, "5B", 50.9, 1.63)
	Cr = elem("Cr", "Chromium", 24, 4, "6B", 52.0, 1.66)
	Mn = elem("Mn", "Manganese", 25, 4, "7B", 54.9, 1.55)
	Fe = elem("Fe", "Iron", 26, 4, "8B", 55.8, 1.83)
	Co = elem("Co", "Cobalt", 27, 4, "8B", 58.9, 1.88)
	Ni = elem("Ni", "Nickel", 28, 4, "8B", 58.7, 1.91)
	Cu = elem("Cu", "Copper", 29, 4, "1B", 63.5, 1.90)
	Zn = elem("Zn", "Zinc", 30, 4, "2B", 65.4, 1.65)
	Ga = elem("Ga", "Gallium", 31, 4, "3A", 69.7, 1.81)
	Ge = elem("Ge", "Germanium", 32, 4, "4A", 72.6, 2.01)
	As = elem("As", "Arsenic", 33, 4, "5A", 74.9, 2.18)
	Se = elem("Se", "Selenium", 34, 4, "6A", 79.0, 2.55)
	Br = elem("Br", "Bromine", 35, 4, "7A", 79.9, 2.96)
	Kr = elem("Kr", "Krypton", 36, 4, "8A", 83.8, 3.00)

	Rb = elem("Rb", "Rubidium", 37, 5, "1A", 85.5, 0.82)
	Sr = elem("Sr", "Strontium", 38, 5, "2A", 87.6, 0.95)
	Y  = elem("Y", "Yttrium", 39, 5, "3B", 88.9, 1.22)
	Zr = elem("Zr", "Zirconium", 40, 5, "4B", 91.2, 1.33)
	Nb = elem("Nb", "Niobium", 41, 5, "5B", 92.9, 1.60)
	Mo = elem("Mo", "Molybdenum", 42, 5, "6B", 95.9, 2.16)
	Tc = relem("Tc", "Technetium", 43, 5, "7B", 98, 1.90)
	Ru = elem("Ru", "Ruthenium", 44, 5, "8B", 101.1, 2.20)
	Rh = elem("Rh", "Rhodium", 45, 5, "8B", 102.9, 2.28)
	Pd = elem("Pd", "Palladium", 46, 5, "8B", 106.4, 2.20)
	Ag = elem("Ag", "Silver", 47, 5, "1B", 107.9, 1.93)
	Cd = elem("Cd", "Cadmium", 48, 5, "2B", 112.4, 1.69)
	In = elem("In", "Indium", 49, 5, "3A", 114.8, 1.78)
	Sn = elem("Sn", "Tin", 50, 5, "4A", 118.7, 1.96)
	Sb = elem("Sb", "Antimony", 51, 5, "5A", 121.8, 2.05)
	Te = elem("Te", "Tellurium", 52, 5, "6A", 127.6, 2.10)
	I  = elem("I", "Iodine", 53, 5, "7A", 126.9, 2.66)
	Xe = elem("Xe", "Xenon", 54, 5, "8A", 131.3, 2.60)

	Cs = elem("Cs", "Caesium", 55, 6, "1A", 132.9, 0.79)
	Ba = elem("Ba", "Barium", 56, 6, "2A", 137.3, 0.89)
	La = elem("La", "Lanthanum", 57, 6, "3B", 138.9, 1.10)
	Ce = elem("Ce", "Cerium", 58, 6, "3B", 140.1, 1.12)
	Pr = elem("Pr", "Praseodymium", 59, 6, "3B", 140.9, 1.13)
	Nd = elem("Nd", "Neodymium", 60, 6, "3B", 144.2, 1.14)
	Pm = relem("Pm", "Promethium", 61, 6, "3B", 145.0, 1.13)
	Sm = elem("Sm", "Samarium", 62, 6, "3B", 150.4, 1.17)
	Eu = elem("Eu", "Europium", 63, 6, "3B", 152.0, 1.20)
	Gd = elem("Gd", "Gadolinium", 64, 6, "3B", 157.3, 1.20)
	Tb = elem("Tb", "Terbium", 65, 6, "3B", 158.9, 1.10)
	Dy = elem("Dy", "Dysprosium", 66, 6, "3B", 162.5, 1.22)
	Ho = elem("Ho", "Holmium", 67, 6, "3B", 164.9, 1.23)
	Er = elem("Er", "Erbium", 68, 6, "3B", 167.3, 1.24)
	Tm = elem("Tm", "Thulium", 69, 6, "3B", 168.9, 1.25)
	Yb = elem("Yb", "Ytterbium", 70, 6, "3B", 173.0, 1.10)
	Lu = elem("Lu", "Lutetium", 71, 6, "3B", 175.0, 1.27)
	Hf = elem("Hf", "Hafnium", 72, 6, "4B", 178.5, 1.30)
	Ta = elem("Ta", "Tantalum", 73, 6, "5B", 180.9, 1.50)
	W  = elem("W", "Tungsten", 74, 6, "6B", 183.8, 2.36)
	Re = elem("Re", "Rhenium", 75, 6, "7B", 186.2, 1.90)
	Os = elem("Os", "Osmium", 76, 6, "8B", 190.3, 2.20)
	Ir = elem("Ir", "Iridium", 77, 6, "8B", 192.2, 2.20)
	Pt = elem("Pt", "Platinum", 78, 6, "8B", 195.1, 2.28)
	Au = elem("Au", "Gold", 79, 6, "1B", 197.0, 2.54)
	Hg = elem("Hg", "Mercury", 80, 6, "2B", 200.6, 2.00)
	Tl = elem("Tl", "Thallium", 81, 6, "3A", 204.4, 1.62)
	Pb = elem("Pb", "Lead", 82, 6, "4A", 207.2, 2.33)
	Bi = elem("Bi", "Bismuth", 83, 6, "5A", 209.0, 2.02)
	Po = relem("Po", "Polonium", 84, 6, "6A", 209, 2.00)
	At = relem("At", "Astatine", 85, 6, "7A", 210, 2.20)
	Rn = relem("Rn", "Radon", 86, 6, "8A", 222, 2.20)

	Fr = relem("Fr", "Francium", 87, 7, "1A", 223, 0.79)
	Ra = relem("Ra", "Radium", 88, 7, "2A", 226, 0.90)
	Ac = relem("Ac", "Actinium", 89, 7, "3B", 227, 1.10)
	Th = relem("Th", "Thorium", 90, 7, "3B", 232.0, 1.30)
	Pa = relem("Pa", "Protactinium", 91, 7, "3B", 231, 1.50)
	U  = relem("U", "Uranium", 92, 7, "3B", 238.0, 1.38)
	Np = relem("Np", "Neptunium", 93, 7, "3B", 237, 1.36)
	Pu = relem("Pu", "Plutonium", 94, 7, "3B", 244, 1.28)
	Am = relem("Am", "Americium", 95, 7, "3B", 243, 1.13)
	Cm = relem("Cm", "Curium", 96, 7, "3B", 247, 1.28)
	Bk = relem("Bk", "Berkelium", 97, 7, "3B", 247, 1.30)
	Cf = relem("Cf", "Californium", 98, 7, "3B", 251, 1.30)
	Es = relem("Es", "Einsteinium", 99, 7, "3B", 252, 1.30)
	Fm = relem("Fm", "Fermium", 100, 7, "3B", 257, 1.30)
	Md = relem("Md", "Mendelevium", 101, 7, "3B", 258, 1.30)
	No = relem("No", "Nobelium", 102, 7, "3B", 259, 1.30)
	Lr = relem("Lr", "Lawrencium", 103, 7, "3B", 262, 1.29)
	Rf = relem("Rf", "Rutherfordium", 104, 7, "4B", 265, -1)
	Db = relem("Db", "Dubnium", 105, 7, "5B", 268, -1)
	Sg = relem("Sg", "Seaborgium", 106, 7, "6B", 271, -1)
	Bh = relem("Bh", "Bohrium", 107, 7, "7B", 267, -1)
	Hs = relem("Hs", "Hassium", 108, 7, "8B", 269, -1)
	Mt = relem("Mt", "Meitnerium", 109, 7, "8B", 278, -1)
	Ds = relem("Ds", "Darmstadtium", 110, 7, "8B", 281, -1)
	Rg = relem("Rg", "Roentgenium", 111, 7, "1B", 281, -1)
	Cn = relem("Cn", "Copernicium", 112, 7, "2B", 285, -1)
	Nh = relem("Nh", "Nihonium", 113, 7, "3A", 284, -1)
	Fl = relem("Fl", "Flerovium", 114, 7, "4A", 289, -1)
	Mc = relem("Mc", "Moscovium", 115, 7, "5A", 288, -1)
	Lv = relem("Lv", "Livermorium", 116, 7, "6A", 293, -1)
	Ts = relem("Ts", "Tennessine", 117, 7, "7A", 294, -1)
	Og = relem("Og", "Oganesson", 118, 7, "8A", 294, -1)
)

// Table holds every element in atomic-number order, so
// Table[e.AtomicNumber-1] == e.
var Table = []Element{
	H, He,
	Li, Be, B, C, N, O, F, Ne,
	Na, Mg, Al, Si, P, S, Cl, Ar,
	K, Ca, Sc, Ti, V, Cr, Mn, Fe, Co, Ni, Cu, Zn, Ga, Ge, As, Se, Br, Kr,
	Rb, Sr, Y, Zr, Nb, Mo, Tc, Ru, Rh, Pd, Ag, Cd, In, Sn, Sb, Te, I, Xe,
	Cs, Ba, La, Ce, Pr, Nd, Pm, Sm, Eu, Gd, Tb, Dy, Ho, Er, Tm, Yb, Lu,
	Hf, Ta, W, Re, Os, Ir, Pt, Au, Hg, Tl, Pb, Bi, Po, At, Rn,
	Fr, Ra, Ac, Th, Pa, U, Np, Pu, Am, Cm, Bk, Cf, Es, Fm, Md, No, Lr,
	Rf, Db, Sg, Bh, Hs, Mt, Ds, Rg, Cn, Nh, Fl, Mc, Lv, Ts, Og,
}

// Trivial families.
var (
	AlkaliMetals      = []Element{Li, Na, K, Rb, Cs, Fr}
	AlkaliEarthMetals = []Element{Be, Mg, Ca, Sr, Ba, Ra}
	Halogens          = []Element{F, Cl, Br, I}
	Chalcogens        = []Element{O, S, Se, Te}
	Lanthanides       = []Element{Ce, Pr, Nd, Pm, Sm, Eu, Gd, Tb, Dy, Ho, Er, Tm, Yb, Lu}
	Actinides         = []Element{Th, Pa, U, Np, Pu, Am, Cm, Bk, Cf, Es, Fm, Md, No, Lr}
	NobleGases        = []Element{He, Ne, Ar, Kr, Xe, Rn}
	NitrogenGroup     = []Element{N, P, As, Sb, Bi}
	CarbonGroup       = []Element{C, Si, Ge, Sn, Pb}
)

// A- and B-group columns, top to bottom.
var (
	GroupFirstA   = []Element{H, Li, Na, K, Rb, Cs, Fr}
	GroupSecondA  = []Element{Be, Mg, Ca, Sr, Ba, Ra}
	GroupThirdA   = []Element{B, Al, Ga, In, Tl, Nh}
	GroupFourthA  = []Element{C, Si, Ge, Sn, Pb, Fl}
	GroupFifthA   = []Element{N, P, As, Sb, Bi, Mc}
	GroupSixthA   = []Element{O, S, Se, Te, Po, Lv}
	GroupSeventhA = []Element{F, Cl, Br, I, At, Ts}
	GroupEighthA  = []Element{He, Ne, Ar, Kr, Xe, Rn, Og}

	GroupFirstB   = []Element{Cu, Ag, Au, Rg}
	GroupSecondB  = []Element{Zn, Cd, Hg, Cn}
	GroupThirdB   = []Element{Sc, Y, La, Ac}
	GroupFourthB  = []Element{Ti, Zr, Hf, Rf}
	GroupFifthB   = []Element{V, Nb, Ta, Db}
	GroupSixthB   = []Element{Cr, Mo, W, Sg}
	GroupSeventhB = []Element{Mn, Tc, Re, Bh}
	GroupEighthB1 = []Element{Fe, Ru, Os, Hs}
	GroupEighthB2 = []Element{Co, Rh, Ir, Mt}
	GroupEighthB3 = []Element{Ni, Pd, Pt, Ds}
)

var allGroups = [][]Element{
	GroupFirstA, GroupSecondA, GroupThirdA, GroupFourthA,
	GroupFifthA, GroupSixthA, GroupSeventhA, GroupEighthA,
	GroupFirstB, GroupSecondB, GroupThirdB, GroupFourthB,
	GroupFifthB, GroupSixthB, GroupSeventhB,
	GroupEighthB1, GroupEighthB2, GroupEighthB3,
}

// Metals holds the metallic division of the table: all of groups B, the
// A-group metals, the lanthanides and the actinides.
var Metals = buildMetals()

func buildMetals() []Element {
	var m []Element
	m = append(m, GroupFirstA[1:]...) // every alkali column member except hydrogen
	m = append(m, GroupSecondA...)
	m = append(m, GroupFirstB...)
	m = append(m, GroupSecondB...)
	m = append(m, GroupThirdB...)
	m = append(m, GroupFourthB...)
	m = append(m, GroupFifthB...)
	m = append(m, GroupSixthB...)
	m = append(m, GroupSeventhB...)
	m = append(m, GroupEighthB1...)
	m = append(m, GroupEighthB2...)
	m = append(m, GroupEighthB3...)
	m = append(m, Al, Ga, In, Tl, Sn, Pb, Sb, Bi)
	m = append(m, Lanthanides...)
	m = append(m, Actinides...)
	m = append(m, Po, At, Nh, Fl, Mc, Lv, Ts, Og)
	return m
}

var (
	bySymbol = make(map[string]Element, len(Table))
	metalSet = make(map[int]struct{})
)

func init() {
	for _, e := range Table {
		bySymbol[e.Symbol] = e
	}
	for _, e := range Metals {
		metalSet[e.AtomicNumber] = struct{}{}
	}
}
