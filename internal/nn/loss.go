package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MSELoss returns Σ (predᵢ - targetᵢ)².
//
// The sum is not averaged, matching the classic toy training loop.
func MSELoss(preds []autodiff.Value, targets []float64) autodiff.Value {
	if len(preds) != len(targets) {
		panic(fmt.Sprintf("MSELoss: %d predictions for %d targets", len(preds), len(targets)))
	}
	if len(preds) == 0 {
		panic("MSELoss: no predictions")
	}

	var loss autodiff.Value
	for i, p := range preds {
		sq := p.SubScalar(targets[i]).PowInt(2)
		if i == 0 {
			loss = sq
			continue
		}
		loss = loss.Add(sq)
	}
	return loss
}
