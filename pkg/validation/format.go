package validation

import (
	"fmt"

	"github.com/buildcost/estimator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is valid
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("unknown output format %s; must be %s or %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}
