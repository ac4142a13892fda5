// Package convert runs duration conversions over batches of inputs.
package convert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/jparise/humantime/internal/timeparse"
	"golang.org/x/sync/semaphore"
)

// Converter orchestrates batch conversion and reporting.
type Converter struct {
	output *Output
}

// New creates a new Converter.
func New(stdout, stderr io.Writer, colorize bool) *Converter {
	return &Converter{
		output: NewOutput(stdout, stderr, colorize),
	}
}

type result struct {
	input string
	value timeparse.Duration
	err   error
}

// Parse parses every input as duration text and prints it in opts.Output
// form, or prints their sum when opts.Sum is set.
func (c *Converter) Parse(ctx context.Context, opts *Options) error {
	return c.convert(ctx, opts, func(input string) (timeparse.Duration, error) {
		d, err := timeparse.Parse(input)
		if err != nil {
			return d, err
		}
		return d, checkBounds(d, opts.Min, opts.Max)
	}, func(d timeparse.Duration) (string, error) {
		return render(d, opts.Output)
	})
}

// Format reads every input as a decimal number of seconds and prints its
// canonical duration text.
func (c *Converter) Format(ctx context.Context, opts *Options) error {
	return c.convert(ctx, opts, timeparse.ParseSeconds, func(d timeparse.Duration) (string, error) {
		return timeparse.Format(d), nil
	})
}

// Between prints the time elapsed from start to end, both timestamps in a
// format accepted by timeparse.ParseTime.
func (c *Converter) Between(start, end string) error {
	from, err := timeparse.ParseTime(start)
	if err != nil {
		return err
	}
	to, err := timeparse.ParseTime(end)
	if err != nil {
		return err
	}

	d, err := timeparse.Between(from, to)
	if err != nil {
		return err
	}
	c.output.Result(start+" - "+end, timeparse.Format(d), false)
	return nil
}

func (c *Converter) convert(
	ctx context.Context,
	opts *Options,
	parse func(string) (timeparse.Duration, error),
	render func(timeparse.Duration) (string, error),
) error {
	inputs, err := collectInputs(opts)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no inputs to convert")
	}

	results, err := c.run(ctx, inputs, opts.Jobs, parse)
	if err != nil {
		return err
	}

	var (
		failed int
		total  timeparse.Duration
	)
	for _, r := range results {
		if r.err != nil {
			failed++
			c.output.Warningf("%q: %v", r.input, r.err)
			continue
		}

		if opts.Sum {
			total, err = total.Add(r.value)
			if err != nil {
				return fmt.Errorf("sum of inputs: %w", err)
			}
			continue
		}

		text, err := render(r.value)
		if err != nil {
			failed++
			c.output.Warningf("%q: %v", r.input, err)
			continue
		}
		c.output.Result(r.input, text, opts.ShowInput)
	}

	if opts.Sum && failed < len(results) {
		text, err := render(total)
		if err != nil {
			return fmt.Errorf("sum of inputs: %w", err)
		}
		c.output.Result("total", text, opts.ShowInput)
		if failed > 0 {
			c.output.Infof("total excludes %d failed inputs", failed)
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to convert %d of %d inputs", failed, len(results))
	}
	return nil
}

// run converts inputs concurrently with bounded parallelism. Results keep
// the order of inputs.
func (c *Converter) run(
	ctx context.Context,
	inputs []string,
	jobs int,
	parse func(string) (timeparse.Duration, error),
) ([]result, error) {
	if jobs < 1 {
		jobs = 1
	}

	start := time.Now()
	results := make([]result, len(inputs))

	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(jobs))

	for i, input := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			defer sem.Release(1)

			d, err := parse(input)
			results[i] = result{input: input, value: d, err: err}
		}(i, input)
	}

	wg.Wait()

	slog.Debug("converted inputs",
		"count", len(inputs),
		"jobs", jobs,
		"elapsed", timeparse.FromStd(time.Since(start)))
	return results, nil
}

func checkBounds(d timeparse.Duration, minimum, maximum *timeparse.Duration) error {
	if minimum != nil && d.Compare(*minimum) < 0 {
		return fmt.Errorf("duration %s is below the minimum %s", d, minimum)
	}
	if maximum != nil && d.Compare(*maximum) > 0 {
		return fmt.Errorf("duration %s exceeds the maximum %s", d, maximum)
	}
	return nil
}

func render(d timeparse.Duration, mode OutputMode) (string, error) {
	switch mode {
	case OutputSeconds:
		return d.DecimalSeconds(), nil
	case OutputGo:
		std, err := d.Std()
		if err != nil {
			return "", fmt.Errorf("%s cannot be represented as a Go duration: %w", d, err)
		}
		return std.String(), nil
	default:
		return timeparse.Format(d), nil
	}
}
