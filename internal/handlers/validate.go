package handlers

import (
	"errors"

	"github.com/Thao1971/bud-advisors-app-sub000/internal/utils"
)

func validatePutDTO(d CompanyPutDTO) error {
	if d.TaxID != "" && !utils.ValidateTaxID(utils.SanitizeTaxID(d.TaxID)) {
		return errors.New("tax_id contains no alphanumeric characters")
	}
	if d.EmployeeCount != nil && *d.EmployeeCount < 0 {
		return errors.New("employee_count must not be negative")
	}
	return nil
}
