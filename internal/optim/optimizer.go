// Package optim implements gradient-descent optimizers for the scalar network.
//
// Example usage:
//
//	optimizer := optim.NewSGD(mlp.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    mark := g.Mark()
//	    loss := nn.MSELoss(predict(mlp, xs), ys)
//
//	    optimizer.ZeroGrad()
//	    if err := loss.Backward(); err != nil {
//	        return err
//	    }
//	    optimizer.Step()
//	    g.Release(mark)
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies the gradients currently stored on the parameters.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Gradients accumulate across backward passes, so this must be called
	// before each one.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)
}
