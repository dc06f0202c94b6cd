package settings_test

import (
	"fmt"

	"github.com/katalvlaran/qrules/particle"
	"github.com/katalvlaran/qrules/quantum"
	"github.com/katalvlaran/qrules/settings"
)

// ExampleCreateInteractionSettings lists the node domains of the EM layer.
func ExampleCreateInteractionSettings() {
	db, err := particle.Default()
	if err != nil {
		panic(err)
	}
	all, err := settings.CreateInteractionSettings(settings.Helicity, db, settings.WithMaxAngularMomentum(1))
	if err != nil {
		panic(err)
	}
	em := all[settings.EM].Node
	for _, q := range []quantum.NodeQN{quantum.NodeLMagnitude, quantum.NodeSMagnitude, quantum.NodeParityPrefactor} {
		fmt.Println(q, em.Domains[q])
	}
	fmt.Println(em.Rules.Len(), "rules")

	// Output:
	// l_magnitude [0, 1]
	// s_magnitude [0, 1/2, 1, 3/2, 2]
	// parity_prefactor [-1, +1]
	// 15 rules
}
