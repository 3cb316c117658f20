// Package main provides the micrograd CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
	"github.com/born-ml/micrograd/optim"
)

const version = "v0.1.0"

// Toy dataset: four rows of three inputs, one target each.
var (
	trainXs = [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	trainYs = []float64{1.0, -1.0, -1.0, 1.0}
)

// trainConfig holds the flags of the train command.
type trainConfig struct {
	Epochs    int
	Optimizer string
	LR        float64
	Momentum  float64
	Seed      int64
	Quiet     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(w)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(w, "micrograd %s\n", version)
		return nil
	case "train":
		cfg, err := parseTrainFlags(args[1:])
		if err != nil {
			return err
		}
		_, err = train(cfg, w)
		return err
	default:
		usage(w)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "micrograd - scalar autodiff with a tiny MLP")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train MLP(3, [4, 4, 1]) on the toy dataset")
}

func parseTrainFlags(args []string) (trainConfig, error) {
	var cfg trainConfig
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.IntVar(&cfg.Epochs, "epochs", 100, "Number of training epochs")
	fs.StringVar(&cfg.Optimizer, "optimizer", "sgd", "Optimizer: sgd or adam")
	fs.Float64Var(&cfg.LR, "lr", 0.05, "Learning rate")
	fs.Float64Var(&cfg.Momentum, "momentum", 0, "SGD momentum")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Initialization seed (0 = random)")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Only print the final result")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Epochs <= 0 {
		return cfg, fmt.Errorf("epochs must be positive, got %d", cfg.Epochs)
	}
	if cfg.Optimizer != "sgd" && cfg.Optimizer != "adam" {
		return cfg, fmt.Errorf("unknown optimizer %q (want sgd or adam)", cfg.Optimizer)
	}
	return cfg, nil
}

func newOptimizer(cfg trainConfig, params []*nn.Parameter) optim.Optimizer {
	if cfg.Optimizer == "adam" {
		return optim.NewAdam(params, optim.AdamConfig{LR: cfg.LR})
	}
	return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum})
}

// train runs gradient descent and returns the loss of the trained model.
func train(cfg trainConfig, w io.Writer) (float64, error) {
	g := autodiff.NewGraph()
	mlp := nn.NewMLP(g, nn.MLPConfig{InputSize: 3, LayerSizes: []int{4, 4, 1}, Seed: cfg.Seed})
	optimizer := newOptimizer(cfg, mlp.Parameters())

	fmt.Fprintf(w, "Training MLP(3, [4, 4, 1]) with %d parameters\n", len(mlp.Parameters()))

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		mark := g.Mark()

		l := nn.MSELoss(predict(g, mlp), trainYs)
		optimizer.ZeroGrad()
		if err := l.Backward(); err != nil {
			return 0, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		optimizer.Step()

		if !cfg.Quiet {
			fmt.Fprintf(w, "Epoch %4d  loss %.6f\n", epoch, l.Data())
		}
		g.Release(mark)
	}

	mark := g.Mark()
	defer g.Release(mark)

	// Evaluated after the last step, so loss and predictions agree.
	preds := predict(g, mlp)
	loss := nn.MSELoss(preds, trainYs).Data()

	fmt.Fprintf(w, "Final loss: %.6f\n", loss)
	for i, p := range preds {
		fmt.Fprintf(w, "  %v -> %+.4f (target %+.1f)\n", trainXs[i], p.Data(), trainYs[i])
	}
	return loss, nil
}

func predict(g *autodiff.Graph, mlp *nn.MLP) []autodiff.Value {
	preds := make([]autodiff.Value, len(trainXs))
	for i, x := range trainXs {
		preds[i] = mlp.Forward(nn.Inputs(g, x))[0]
	}
	return preds
}
