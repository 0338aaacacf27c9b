// Package batch runs the enhancement transform over a set of databases
// described by a YAML job file, in file order.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/South-33/Elixer/pkg/enhance"
)

// Job describes one database to enhance.
type Job struct {
	// Name identifies the job in output. Defaults to the input file's
	// base name without extension.
	Name string `yaml:"name,omitempty"`

	// Input is the path of the raw database file.
	Input string `yaml:"input"`

	// Output is the path the enhanced copy is written to.
	Output string `yaml:"output"`
}

// JobFile is the top-level structure of a batch job file.
type JobFile struct {
	Databases []Job `yaml:"databases"`
}

// LoadJobs reads and validates a YAML job file. Every entry must name an
// input and an output path; missing job names are defaulted.
func LoadJobs(path string) (*JobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}

	var jf JobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}

	if len(jf.Databases) == 0 {
		return nil, fmt.Errorf("job file %s lists no databases", path)
	}
	for i := range jf.Databases {
		job := &jf.Databases[i]
		if job.Input == "" {
			return nil, fmt.Errorf("job file %s: database %d has no input path", path, i+1)
		}
		if job.Output == "" {
			return nil, fmt.Errorf("job file %s: database %d has no output path", path, i+1)
		}
		if job.Name == "" {
			base := filepath.Base(job.Input)
			job.Name = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}

	return &jf, nil
}

// Result records the outcome of one job.
type Result struct {
	Job Job
	Err error
}

// Run enhances each database in file order. The first failure aborts the
// run; results for all attempted jobs are returned either way.
func Run(enhancer *enhance.Enhancer, jf *JobFile) ([]Result, error) {
	var results []Result
	for _, job := range jf.Databases {
		err := enhancer.EnhanceFile(job.Input, job.Output)
		results = append(results, Result{Job: job, Err: err})
		if err != nil {
			return results, fmt.Errorf("enhancing %s: %w", job.Name, err)
		}
	}
	return results, nil
}
