package ecc

import "math/big"

// fromDec converts the passed decimal string into a big integer pointer
// and will panic if there is an error. This is only provided for the
// hard-coded parameters below. Only use this function on hard-coded
// values.
func fromDec(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid decimal in curve parameter source")
	}
	return r
}

// spkParams defines the parameter set for Service Provider Keys
// (License Server IDs).
var spkParams = Curve{
	Name: "spk",

	P: fromDec("21782971228112002125810473336838725345308036616026120243639513697227789232461459408261967852943809534324870610618161"),
	A: big.NewInt(1),
	B: big.NewInt(0),

	Gx: fromDec("10692194187797070010417373067833672857716423048889432566885309624149667762706899929433420143814127803064297378514651"),
	Gy: fromDec("14587399915883137990539191966406864676102477026583239850923355829082059124877792299572208431243410905713755917185109"),
	Kx: fromDec("3917395608307488535457389605368226854270150445881753750395461980792533894109091921400661704941484971683063487980768"),
	Ky: fromDec("8858262671783403684463979458475735219807686373661776500155868309933327116988404547349319879900761946444470688332645"),

	N:    fromDec("629063109922370885449"),
	Priv: fromDec("153862071918555979944"),
}

// lkpParams defines the parameter set for License Key Packs.
var lkpParams = Curve{
	Name: "lkp",

	P: fromDec("28688293616765795404141427476803815352899912533728694325464374376776313457785622361119232589082131818578591461837297"),
	A: big.NewInt(1),
	B: big.NewInt(0),

	Gx: fromDec("18999816458520350299014628291870504329073391058325678653840191278128672378485029664052827205905352913351648904170809"),
	Gy: fromDec("7233699725243644729688547165924232430035643592445942846958231777803539836627943189850381859836033366776176689124317"),
	Kx: fromDec("7147768390112741602848314103078506234267895391544114241891627778383312460777957307647946308927283757886117119137500"),
	Ky: fromDec("20525272195909974311677173484301099561025532568381820845650748498800315498040161314197178524020516408371544778243934"),

	N:    fromDec("675048016158598417213"),
	Priv: fromDec("100266970209474387075"),
}

// SPK returns the curve parameters used for Service Provider Keys.
func SPK() *Curve {
	return &spkParams
}

// LKP returns the curve parameters used for License Key Packs.
func LKP() *Curve {
	return &lkpParams
}
