package filing

import (
	"time"

	"github.com/paulgb/sec-data-parser/sgml"
)

// FilingValues describes one form filed under a filer entity.
type FilingValues struct {
	FormType   string  `json:"form_type"`
	Act        *string `json:"act,omitempty"`
	FileNumber *string `json:"file_number,omitempty"`
	FilmNumber *string `json:"film_number,omitempty"`
}

func decodeFilingValues(entity string, children []*sgml.Node) (*FilingValues, error) {
	formType := newOne[string](entity, string(sgml.ValFormType))
	act := newOne[string](entity, string(sgml.ValAct))
	fileNumber := newOne[string](entity, string(sgml.ValFileNumber))
	filmNumber := newOne[string](entity, string(sgml.ValFilmNumber))

	for _, child := range children {
		if child.Kind != sgml.NodeValue {
			return nil, unrecognized(entity, child)
		}
		var err error
		switch child.Value {
		case sgml.ValFormType:
			err = formType.set(child.Text)
		case sgml.ValAct:
			err = act.set(child.Text)
		case sgml.ValFileNumber:
			err = fileNumber.set(child.Text)
		case sgml.ValFilmNumber:
			err = filmNumber.set(child.Text)
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	ft, err := formType.required()
	if err != nil {
		return nil, err
	}
	return &FilingValues{
		FormType:   ft,
		Act:        act.optional(),
		FileNumber: fileNumber.optional(),
		FilmNumber: filmNumber.optional(),
	}, nil
}

// CompanyData identifies a business entity. The same shape backs both
// COMPANY-DATA and OWNER-DATA blocks.
type CompanyData struct {
	ConformedName        string    `json:"conformed_name"`
	CIK                  string    `json:"cik"`
	IRSNumber            *string   `json:"irs_number,omitempty"`
	StateOfIncorporation *string   `json:"state_of_incorporation,omitempty"`
	FiscalYearEnd        *MonthDay `json:"fiscal_year_end,omitempty"`
	AssignedSIC          *string   `json:"assigned_sic,omitempty"`
	Relationship         *string   `json:"relationship,omitempty"`
}

func decodeCompanyData(entity string, children []*sgml.Node) (*CompanyData, error) {
	conformedName := newOne[string](entity, string(sgml.ValConformedName))
	cik := newOne[string](entity, string(sgml.ValCIK))
	irsNumber := newOne[string](entity, string(sgml.ValIRSNumber))
	stateOfInc := newOne[string](entity, string(sgml.ValStateOfIncorporation))
	fiscalYearEnd := newOne[MonthDay](entity, string(sgml.ValFiscalYearEnd))
	assignedSIC := newOne[string](entity, string(sgml.ValAssignedSIC))
	relationship := newOne[string](entity, string(sgml.ValRelationship))

	for _, child := range children {
		if child.Kind != sgml.NodeValue {
			return nil, unrecognized(entity, child)
		}
		var err error
		switch child.Value {
		case sgml.ValConformedName:
			err = conformedName.set(child.Text)
		case sgml.ValCIK:
			err = cik.set(child.Text)
		case sgml.ValIRSNumber:
			err = irsNumber.set(child.Text)
		case sgml.ValStateOfIncorporation:
			err = stateOfInc.set(child.Text)
		case sgml.ValFiscalYearEnd:
			err = setParsed(&fiscalYearEnd, child.Text, ParseMonthDay)
		case sgml.ValAssignedSIC:
			err = assignedSIC.set(child.Text)
		case sgml.ValRelationship:
			err = relationship.set(child.Text)
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	name, err := conformedName.required()
	if err != nil {
		return nil, err
	}
	id, err := cik.required()
	if err != nil {
		return nil, err
	}
	return &CompanyData{
		ConformedName:        name,
		CIK:                  id,
		IRSNumber:            irsNumber.optional(),
		StateOfIncorporation: stateOfInc.optional(),
		FiscalYearEnd:        fiscalYearEnd.optional(),
		AssignedSIC:          assignedSIC.optional(),
		Relationship:         relationship.optional(),
	}, nil
}

// Address is a business or mailing address block. Every field is optional;
// historic archives omit freely.
type Address struct {
	Street1 *string `json:"street1,omitempty"`
	Street2 *string `json:"street2,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Zip     *string `json:"zip,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

func decodeAddress(entity string, children []*sgml.Node) (*Address, error) {
	street1 := newOne[string](entity, string(sgml.ValStreet1))
	street2 := newOne[string](entity, string(sgml.ValStreet2))
	city := newOne[string](entity, string(sgml.ValCity))
	state := newOne[string](entity, string(sgml.ValState))
	zip := newOne[string](entity, string(sgml.ValZip))
	phone := newOne[string](entity, string(sgml.ValPhone))

	for _, child := range children {
		if child.Kind != sgml.NodeValue {
			return nil, unrecognized(entity, child)
		}
		var err error
		switch child.Value {
		case sgml.ValStreet1:
			err = street1.set(child.Text)
		case sgml.ValStreet2:
			err = street2.set(child.Text)
		case sgml.ValCity:
			err = city.set(child.Text)
		case sgml.ValState:
			err = state.set(child.Text)
		case sgml.ValZip:
			err = zip.set(child.Text)
		case sgml.ValPhone:
			err = phone.set(child.Text)
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	return &Address{
		Street1: street1.optional(),
		Street2: street2.optional(),
		City:    city.optional(),
		State:   state.optional(),
		Zip:     zip.optional(),
		Phone:   phone.optional(),
	}, nil
}

// FormerCompany records a name change.
type FormerCompany struct {
	FormerConformedName string    `json:"former_conformed_name"`
	DateChanged         time.Time `json:"date_changed"`
}

func decodeFormerCompany(entity string, children []*sgml.Node) (*FormerCompany, error) {
	name := newOne[string](entity, string(sgml.ValFormerConformedName))
	dateChanged := newOne[time.Time](entity, string(sgml.ValDateChanged))

	for _, child := range children {
		if child.Kind != sgml.NodeValue {
			return nil, unrecognized(entity, child)
		}
		var err error
		switch child.Value {
		case sgml.ValFormerConformedName:
			err = name.set(child.Text)
		case sgml.ValDateChanged:
			err = setParsed(&dateChanged, child.Text, ParseDate)
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	n, err := name.required()
	if err != nil {
		return nil, err
	}
	d, err := dateChanged.required()
	if err != nil {
		return nil, err
	}
	return &FormerCompany{FormerConformedName: n, DateChanged: d}, nil
}

// Company is a filer-style entity: registrant, reporting owner, issuer,
// subject company, depositor, securitizer. The archive uses the same block
// shape for all of them.
type Company struct {
	CompanyData     *CompanyData    `json:"company_data,omitempty"`
	OwnerData       *CompanyData    `json:"owner_data,omitempty"`
	FilingValues    []FilingValues  `json:"filing_values,omitempty"`
	BusinessAddress *Address        `json:"business_address,omitempty"`
	MailAddress     *Address        `json:"mail_address,omitempty"`
	FormerNames     []FormerCompany `json:"former_names,omitempty"`
	FormerCompanies []FormerCompany `json:"former_companies,omitempty"`
}

func decodeCompany(entity string, children []*sgml.Node) (*Company, error) {
	companyData := newOne[*CompanyData](entity, string(sgml.TagCompanyData))
	ownerData := newOne[*CompanyData](entity, string(sgml.TagOwnerData))
	businessAddress := newOne[*Address](entity, string(sgml.TagBusinessAddress))
	mailAddress := newOne[*Address](entity, string(sgml.TagMailAddress))
	var filingValues []FilingValues
	var formerNames, formerCompanies []FormerCompany

	for _, child := range children {
		if child.Kind != sgml.NodeContainer {
			return nil, unrecognized(entity, child)
		}
		childEntity := string(child.Container)
		var err error
		switch child.Container {
		case sgml.TagCompanyData:
			err = setDecoded(&companyData, childEntity, child.Children, decodeCompanyData)
		case sgml.TagOwnerData:
			err = setDecoded(&ownerData, childEntity, child.Children, decodeCompanyData)
		case sgml.TagBusinessAddress:
			err = setDecoded(&businessAddress, childEntity, child.Children, decodeAddress)
		case sgml.TagMailAddress:
			err = setDecoded(&mailAddress, childEntity, child.Children, decodeAddress)
		case sgml.TagFilingValues:
			var fv *FilingValues
			if fv, err = decodeFilingValues(childEntity, child.Children); err == nil {
				filingValues = append(filingValues, *fv)
			}
		case sgml.TagFormerName:
			var fc *FormerCompany
			if fc, err = decodeFormerCompany(childEntity, child.Children); err == nil {
				formerNames = append(formerNames, *fc)
			}
		case sgml.TagFormerCompany:
			var fc *FormerCompany
			if fc, err = decodeFormerCompany(childEntity, child.Children); err == nil {
				formerCompanies = append(formerCompanies, *fc)
			}
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	return &Company{
		CompanyData:     deref(companyData.optional()),
		OwnerData:       deref(ownerData.optional()),
		FilingValues:    filingValues,
		BusinessAddress: deref(businessAddress.optional()),
		MailAddress:     deref(mailAddress.optional()),
		FormerNames:     formerNames,
		FormerCompanies: formerCompanies,
	}, nil
}

// Name returns the best display name for the company, if any.
func (c *Company) Name() string {
	if c.CompanyData != nil {
		return c.CompanyData.ConformedName
	}
	if c.OwnerData != nil {
		return c.OwnerData.ConformedName
	}
	return ""
}

// setDecoded decodes a nested container into a set-once field.
func setDecoded[T any](o *one[*T], entity string, children []*sgml.Node, decode func(string, []*sgml.Node) (*T, error)) error {
	v, err := decode(entity, children)
	if err != nil {
		return err
	}
	return o.set(v)
}

// deref unwraps the accumulator's **T for pointer-typed optional fields.
func deref[T any](v **T) *T {
	if v == nil {
		return nil
	}
	return *v
}

func unrecognized(entity string, child *sgml.Node) error {
	name := ""
	switch child.Kind {
	case sgml.NodeContainer:
		name = string(child.Container)
	case sgml.NodeValue:
		name = string(child.Value)
	case sgml.NodeText:
		name = "TEXT"
	}
	return &UnrecognizedChildError{Entity: entity, Child: name}
}
