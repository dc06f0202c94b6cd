package conservation

import "github.com/katalvlaran/qrules/quantum"

// CheckGellMannNishijima checks Q = I3 + (B + S + C + B' + T)/2.
// States carrying any lepton number are exempt.
func CheckGellMannNishijima(in GellMannNishijimaInput) bool {
	if !in.ElectronLeptonNumber.IsZero() || !in.MuonLeptonNumber.IsZero() || !in.TauLeptonNumber.IsZero() {
		return true
	}
	hypercharge := quantum.Sum([]quantum.Fraction{
		in.Strangeness, in.Charmness, in.Bottomness, in.Topness, in.BaryonNumber,
	})

	return in.Charge == in.IsospinProjection.Add(hypercharge.Mul(quantum.Half(1)))
}

// GellMannNishijima checks the charge of a single hadron.
var GellMannNishijima = NewEdgeElementRule("GellMannNishijima", GellMannNishijimaEdge, CheckGellMannNishijima)
