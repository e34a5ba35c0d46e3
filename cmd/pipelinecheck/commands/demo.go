package commands

import (
	"fmt"

	pipelineerrors "github.com/jmgilman/go/pipeline/errors"
)

// DemoCmd implements the 'demo' command.
type DemoCmd struct {
	Numerator int `help:"Numerator of the division" default:"1"`
	Divisor   int `help:"Divisor of the division; zero triggers the failure" default:"0"`
}

func (d *DemoCmd) Run(g *Global) error {
	g.Logger.Info("Enter try block")

	quotient, err := divide(d.Numerator, d.Divisor)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(g.Stdout, quotient)
	return err
}

// divide returns n / d, re-raising a division panic as a PipelineError whose
// origin is the division itself.
func divide(n, d int) (q int, err error) {
	defer func() {
		r := recover()
		if f := pipelineerrors.Recover(r); f != nil {
			// A recovered panic always has an active failure; anything else
			// is a programming error and keeps unwinding.
			err = pipelineerrors.MustWrap(r, f)
		}
	}()

	q = n / d
	return q, nil
}
