package register

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/K0NGR3SS/riskmap/internal/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ParameterGetter is the subset of the SSM client used to fetch a register.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Source selects where a register comes from. The zero value is the
// built-in register.
type Source struct {
	File      string
	Parameter string
}

func (s Source) String() string {
	switch {
	case s.File != "":
		return "file " + s.File
	case s.Parameter != "":
		return "ssm parameter " + s.Parameter
	default:
		return "built-in register"
	}
}

type document struct {
	Risks []entry `yaml:"risks"`
}

type entry struct {
	Name        string   `yaml:"name"`
	Severity    *float64 `yaml:"severity"`
	Probability *float64 `yaml:"probability"`
	Color       string   `yaml:"color"`
	Size        float64  `yaml:"size"`
}

// Parse decodes a YAML register document:
//
//	risks:
//	  - name: Hybrid Delivery
//	    severity: 80
//	    probability: 80
//	    color: "#d73027"
//	    size: 250
//
// Color and size are optional. The result is validated.
func Parse(data []byte) (models.Register, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse register: %w", err)
	}

	reg := make(models.Register, 0, len(doc.Risks))
	for i, e := range doc.Risks {
		if e.Severity == nil || e.Probability == nil {
			return nil, fmt.Errorf("risk %d (%q): severity and probability are required", i+1, e.Name)
		}
		r := models.RiskEntry{
			Name:        e.Name,
			Severity:    *e.Severity,
			Probability: *e.Probability,
			Color:       e.Color,
			MarkerSize:  e.Size,
		}
		if r.Color == "" {
			r.Color = models.DefaultColor
		}
		if r.MarkerSize == 0 {
			r.MarkerSize = models.DefaultMarkerSize
		}
		reg = append(reg, r)
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

func LoadFile(path string) (models.Register, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read register file: %w", err)
	}
	return Parse(data)
}

// LoadParameter reads a register document stored in an SSM parameter.
// SecureString parameters are decrypted.
func LoadParameter(ctx context.Context, getter ParameterGetter, name string) (models.Register, error) {
	out, err := getter.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get parameter %s: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return nil, fmt.Errorf("parameter %s has no value", name)
	}
	return Parse([]byte(aws.ToString(out.Parameter.Value)))
}

// Resolve loads the register named by src. getter is only used for SSM
// sources and may be nil otherwise.
func Resolve(ctx context.Context, logger *zap.Logger, src Source, getter ParameterGetter) (models.Register, error) {
	var (
		reg models.Register
		err error
	)
	switch {
	case src.File != "" && src.Parameter != "":
		return nil, errors.New("register file and ssm parameter are mutually exclusive")
	case src.File != "":
		reg, err = LoadFile(src.File)
	case src.Parameter != "":
		if getter == nil {
			return nil, errors.New("ssm parameter source needs an SSM client")
		}
		reg, err = LoadParameter(ctx, getter, src.Parameter)
	default:
		reg = models.Builtin()
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded risk register", zap.Stringer("source", src), zap.Int("risks", len(reg)))
	return reg, nil
}
