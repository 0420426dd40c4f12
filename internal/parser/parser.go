package parser

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/scriptwatch/exporter.git/internal/customerrors"
	"github.com/scriptwatch/exporter.git/internal/model"
)

// fieldCount is six labels plus the value.
const fieldCount = 7

// Parser converts raw script output into samples. Malformed lines are
// logged and dropped; a parse never fails as a whole.
type Parser struct {
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse splits text into lines and converts each into a Sample. The result
// preserves input line order. Lines with the wrong field count or a
// non-numeric value are logged at error level and skipped.
func (p *Parser) Parse(text string) []model.Sample {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}

	var samples []model.Sample
	for _, line := range strings.Split(text, "\n") {
		sample, err := parseLine(line)
		if err != nil {
			if errors.Is(err, customerrors.ErrBadValue) {
				p.logger.Error().Err(err).Msg("invalid metric value")
			} else {
				p.logger.Error().Str("line", line).Msg("invalid output format")
			}
			continue
		}
		samples = append(samples, sample)
	}

	return samples
}

func parseLine(line string) (model.Sample, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return model.Sample{}, errors.Wrap(customerrors.ErrFieldCount, line)
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	value, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return model.Sample{}, errors.Wrap(customerrors.ErrBadValue, fields[6])
	}

	return model.Sample{
		LabelKey: model.LabelKey{
			Component:       fields[0],
			ProcessName:     fields[1],
			ApplicationName: fields[2],
			Env:             fields[3],
			DomainName:      fields[4],
			MonType:         fields[5],
		},
		Value: value,
	}, nil
}
