package filing

import (
	"strconv"
	"time"

	"github.com/paulgb/sec-data-parser/sgml"
)

// Submission is the root record describing one filing event: its filer
// entities, attached documents, and fund metadata. A submission may carry a
// complete nested submission as its confirming copy.
type Submission struct {
	AccessionNumber string     `json:"accession_number"`
	Type            string     `json:"type"`
	FilingDate      time.Time  `json:"filing_date"`
	Items           []string   `json:"items,omitempty"`
	Documents       []Document `json:"documents,omitempty"`

	// PublicDocumentCount is the archive's declared document count; it is
	// checked against len(Documents) after decoding.
	PublicDocumentCount *int `json:"public_document_count,omitempty"`

	DateOfFilingDateChange *time.Time `json:"date_of_filing_date_change,omitempty"`
	EffectivenessDate      *time.Time `json:"effectiveness_date,omitempty"`
	Period                 *time.Time `json:"period,omitempty"`
	PeriodStart            *time.Time `json:"period_start,omitempty"`
	ActionDate             *time.Time `json:"action_date,omitempty"`
	ReceivedDate           *time.Time `json:"received_date,omitempty"`
	PublicRelDate          *time.Time `json:"public_rel_date,omitempty"`
	Timestamp              *time.Time `json:"timestamp,omitempty"`

	Filers           []Company `json:"filers,omitempty"`
	ReportingOwners  []Company `json:"reporting_owners,omitempty"`
	SubjectCompanies []Company `json:"subject_companies,omitempty"`
	FiledFor         []Company `json:"filed_for,omitempty"`
	// FiledBy is repeated rather than exactly-one: at least one historic
	// archive entry legitimately duplicates the block.
	FiledBy     []Company `json:"filed_by,omitempty"`
	Issuer      *Company  `json:"issuer,omitempty"`
	Depositor   *Company  `json:"depositor,omitempty"`
	Securitizer *Company  `json:"securitizer,omitempty"`

	SeriesAndClassesContractsData *SeriesAndClassesContractsData `json:"series_and_classes_contracts_data,omitempty"`

	GroupMembers []string `json:"group_members,omitempty"`

	Reference462B           *string `json:"reference_462b,omitempty"`
	References429           *string `json:"references_429,omitempty"`
	MAIIndividual           *string `json:"ma_i_individual,omitempty"`
	ABSRule                 *string `json:"abs_rule,omitempty"`
	ABSAssetClass           *string `json:"abs_asset_class,omitempty"`
	DepositorCIK            *string `json:"depositor_cik,omitempty"`
	SponsorCIK              *string `json:"sponsor_cik,omitempty"`
	SecuritizerCIK          *string `json:"securitizer_cik,omitempty"`
	IssuingEntityCIK        *string `json:"issuing_entity_cik,omitempty"`
	IssuingEntityName       *string `json:"issuing_entity_name,omitempty"`
	SecuritizerFileNumber   *string `json:"securitizer_file_number,omitempty"`
	DepositorFileNumber     *string `json:"depositor_file_number,omitempty"`
	Category                *string `json:"category,omitempty"`
	PublicReferenceAcc      *string `json:"public_reference_acc,omitempty"`
	SROS                    *string `json:"sros,omitempty"`
	PreviousAccessionNumber *string `json:"previous_accession_number,omitempty"`

	IsFilerANewRegistrant               *bool `json:"is_filer_a_new_registrant,omitempty"`
	IsFilerAWellKnownSeasonedIssuer     *bool `json:"is_filer_a_well_known_seasoned_issuer,omitempty"`
	FiledPursuantToGeneralInstructionA2 *bool `json:"filed_pursuant_to_general_instruction_a2,omitempty"`
	IsFund24F2Eligible                  *bool `json:"is_fund_24f2_eligible,omitempty"`
	NoQuarterlyActivity                 *bool `json:"no_quarterly_activity,omitempty"`
	NoAnnualActivity                    *bool `json:"no_annual_activity,omitempty"`
	RegisteredEntity                    *bool `json:"registered_entity,omitempty"`

	// Flag tags: present means true.
	Paper           bool `json:"paper,omitempty"`
	PrivateToPublic bool `json:"private_to_public,omitempty"`
	Deletion        bool `json:"deletion,omitempty"`
	Correction      bool `json:"correction,omitempty"`

	// ConfirmingCopy is this submission's one recursive construct: a
	// complete nested submission record, kept behind a pointer so the
	// record's size is bounded regardless of nesting depth.
	ConfirmingCopy *Submission `json:"confirming_copy,omitempty"`
}

func decodeSubmission(entity string, children []*sgml.Node) (*Submission, error) {
	accessionNumber := newOne[string](entity, string(sgml.ValAccessionNumber))
	filingType := newOne[string](entity, string(sgml.ValType))
	documentCount := newOne[int](entity, string(sgml.ValPublicDocumentCount))
	filingDate := newOne[time.Time](entity, string(sgml.ValFilingDate))
	dateOfFilingDateChange := newOne[time.Time](entity, string(sgml.ValDateOfFilingDateChange))
	effectivenessDate := newOne[time.Time](entity, string(sgml.ValEffectivenessDate))
	period := newOne[time.Time](entity, string(sgml.ValPeriod))
	periodStart := newOne[time.Time](entity, string(sgml.ValPeriodStart))
	actionDate := newOne[time.Time](entity, string(sgml.ValActionDate))
	receivedDate := newOne[time.Time](entity, string(sgml.ValReceivedDate))
	publicRelDate := newOne[time.Time](entity, string(sgml.ValPublicRelDate))
	timestamp := newOne[time.Time](entity, string(sgml.ValTimestamp))

	reference462B := newOne[string](entity, string(sgml.ValReference462B))
	references429 := newOne[string](entity, string(sgml.ValReferences429))
	maIIndividual := newOne[string](entity, string(sgml.ValMAIIndividual))
	absRule := newOne[string](entity, string(sgml.ValABSRule))
	absAssetClass := newOne[string](entity, string(sgml.ValABSAssetClass))
	depositorCIK := newOne[string](entity, string(sgml.ValDepositorCIK))
	sponsorCIK := newOne[string](entity, string(sgml.ValSponsorCIK))
	securitizerCIK := newOne[string](entity, string(sgml.ValSecuritizerCIK))
	issuingEntityCIK := newOne[string](entity, string(sgml.ValIssuingEntityCIK))
	issuingEntityName := newOne[string](entity, string(sgml.ValIssuingEntityName))
	securitizerFileNumber := newOne[string](entity, string(sgml.ValSecuritizerFileNumber))
	depositorFileNumber := newOne[string](entity, string(sgml.ValDepositorFileNumber))
	category := newOne[string](entity, string(sgml.ValCategory))
	publicReferenceAcc := newOne[string](entity, string(sgml.ValPublicReferenceAcc))
	sros := newOne[string](entity, string(sgml.ValSROS))
	previousAccessionNumber := newOne[string](entity, string(sgml.ValPreviousAccessionNumber))

	isFilerANewRegistrant := newOne[bool](entity, string(sgml.ValIsFilerANewRegistrant))
	isFilerAWellKnownSeasonedIssuer := newOne[bool](entity, string(sgml.ValIsFilerAWellKnownSeasonedIssuer))
	filedPursuantToA2 := newOne[bool](entity, string(sgml.ValFiledPursuantToGeneralInstructionA2))
	isFund24F2Eligible := newOne[bool](entity, string(sgml.ValIsFund24F2Eligible))
	noQuarterlyActivity := newOne[bool](entity, string(sgml.ValNoQuarterlyActivity))
	noAnnualActivity := newOne[bool](entity, string(sgml.ValNoAnnualActivity))
	registeredEntity := newOne[bool](entity, string(sgml.ValRegisteredEntity))

	issuer := newOne[*Company](entity, string(sgml.TagIssuer))
	depositor := newOne[*Company](entity, string(sgml.TagDepositor))
	securitizer := newOne[*Company](entity, string(sgml.TagSecuritizer))
	seriesData := newOne[*SeriesAndClassesContractsData](entity, string(sgml.TagSeriesAndClassesContractsData))
	confirmingCopy := newOne[*Submission](entity, string(sgml.TagConfirmingCopy))

	var items, groupMembers []string
	var filers, reportingOwners, subjectCompanies, filedFor, filedBy []Company
	var documents []Document
	var paper, privateToPublic, deletion, correction bool

	appendCompany := func(dst *[]Company, child *sgml.Node) error {
		c, err := decodeCompany(string(child.Container), child.Children)
		if err != nil {
			return err
		}
		*dst = append(*dst, *c)
		return nil
	}

	for _, child := range children {
		var err error
		switch child.Kind {
		case sgml.NodeValue:
			switch child.Value {
			case sgml.ValAccessionNumber:
				err = accessionNumber.set(child.Text)
			case sgml.ValType:
				err = filingType.set(child.Text)
			case sgml.ValPublicDocumentCount:
				err = setParsed(&documentCount, child.Text, strconv.Atoi)
			case sgml.ValItems:
				items = append(items, child.Text)
			case sgml.ValGroupMembers:
				groupMembers = append(groupMembers, child.Text)
			case sgml.ValFilingDate:
				err = setParsed(&filingDate, child.Text, ParseDate)
			case sgml.ValDateOfFilingDateChange:
				err = setParsed(&dateOfFilingDateChange, child.Text, ParseDate)
			case sgml.ValEffectivenessDate:
				err = setParsed(&effectivenessDate, child.Text, ParseDate)
			case sgml.ValPeriod:
				err = setParsed(&period, child.Text, ParseDate)
			case sgml.ValPeriodStart:
				err = setParsed(&periodStart, child.Text, ParseDate)
			case sgml.ValActionDate:
				err = setParsed(&actionDate, child.Text, ParseDate)
			case sgml.ValReceivedDate:
				err = setParsed(&receivedDate, child.Text, ParseDate)
			case sgml.ValPublicRelDate:
				err = setParsed(&publicRelDate, child.Text, ParseDate)
			case sgml.ValTimestamp:
				err = setParsed(&timestamp, child.Text, ParseDateTime)
			case sgml.ValReference462B:
				err = reference462B.set(child.Text)
			case sgml.ValReferences429:
				err = references429.set(child.Text)
			case sgml.ValMAIIndividual:
				err = maIIndividual.set(child.Text)
			case sgml.ValABSRule:
				err = absRule.set(child.Text)
			case sgml.ValABSAssetClass:
				err = absAssetClass.set(child.Text)
			case sgml.ValDepositorCIK:
				err = depositorCIK.set(child.Text)
			case sgml.ValSponsorCIK:
				err = sponsorCIK.set(child.Text)
			case sgml.ValSecuritizerCIK:
				err = securitizerCIK.set(child.Text)
			case sgml.ValIssuingEntityCIK:
				err = issuingEntityCIK.set(child.Text)
			case sgml.ValIssuingEntityName:
				err = issuingEntityName.set(child.Text)
			case sgml.ValSecuritizerFileNumber:
				err = securitizerFileNumber.set(child.Text)
			case sgml.ValDepositorFileNumber:
				err = depositorFileNumber.set(child.Text)
			case sgml.ValCategory:
				err = category.set(child.Text)
			case sgml.ValPublicReferenceAcc:
				err = publicReferenceAcc.set(child.Text)
			case sgml.ValSROS:
				err = sros.set(child.Text)
			case sgml.ValPreviousAccessionNumber:
				err = previousAccessionNumber.set(child.Text)
			case sgml.ValIsFilerANewRegistrant:
				err = setParsed(&isFilerANewRegistrant, child.Text, ParseBool)
			case sgml.ValIsFilerAWellKnownSeasonedIssuer:
				err = setParsed(&isFilerAWellKnownSeasonedIssuer, child.Text, ParseBool)
			case sgml.ValFiledPursuantToGeneralInstructionA2:
				err = setParsed(&filedPursuantToA2, child.Text, ParseBool)
			case sgml.ValIsFund24F2Eligible:
				err = setParsed(&isFund24F2Eligible, child.Text, ParseBool)
			case sgml.ValNoQuarterlyActivity:
				err = setParsed(&noQuarterlyActivity, child.Text, ParseBool)
			case sgml.ValNoAnnualActivity:
				err = setParsed(&noAnnualActivity, child.Text, ParseBool)
			case sgml.ValRegisteredEntity:
				err = setParsed(&registeredEntity, child.Text, ParseBool)
			case sgml.ValPrivateToPublic:
				privateToPublic = true
			case sgml.ValDeletion:
				deletion = true
			case sgml.ValCorrection:
				correction = true
			default:
				err = unrecognized(entity, child)
			}

		case sgml.NodeContainer:
			switch child.Container {
			case sgml.TagPaper:
				// A paper wrapper re-frames the whole submission. Decode its
				// children as the submission and keep the marker as a field
				// instead of silently discarding it.
				sub, perr := decodeSubmission(string(child.Container), child.Children)
				if perr != nil {
					return nil, perr
				}
				sub.Paper = true
				return sub, nil
			case sgml.TagFiler:
				err = appendCompany(&filers, child)
			case sgml.TagReportingOwner:
				err = appendCompany(&reportingOwners, child)
			case sgml.TagSubjectCompany:
				err = appendCompany(&subjectCompanies, child)
			case sgml.TagFiledBy:
				err = appendCompany(&filedBy, child)
			case sgml.TagFiledFor:
				err = appendCompany(&filedFor, child)
			case sgml.TagIssuer:
				err = setDecoded(&issuer, string(child.Container), child.Children, decodeCompany)
			case sgml.TagDepositor:
				err = setDecoded(&depositor, string(child.Container), child.Children, decodeCompany)
			case sgml.TagSecuritizer:
				err = setDecoded(&securitizer, string(child.Container), child.Children, decodeCompany)
			case sgml.TagDocument:
				var d *Document
				if d, err = decodeDocument(string(child.Container), child.Children); err == nil {
					documents = append(documents, *d)
				}
			case sgml.TagSeriesAndClassesContractsData:
				err = setDecoded(&seriesData, string(child.Container), child.Children, decodeSeriesAndClassesContractsData)
			case sgml.TagConfirmingCopy:
				err = setDecoded(&confirmingCopy, string(sgml.TagSubmission), child.Children, decodeSubmission)
			default:
				err = unrecognized(entity, child)
			}

		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	accession, err := accessionNumber.required()
	if err != nil {
		return nil, err
	}
	ftype, err := filingType.required()
	if err != nil {
		return nil, err
	}
	fdate, err := filingDate.required()
	if err != nil {
		return nil, err
	}

	// Late invariant: a declared document count must match what was parsed.
	if declared := documentCount.optional(); declared != nil && *declared != len(documents) {
		return nil, &DocumentCountError{Declared: *declared, Parsed: len(documents)}
	}

	return &Submission{
		AccessionNumber:                     accession,
		Type:                                ftype,
		FilingDate:                          fdate,
		Items:                               items,
		Documents:                           documents,
		PublicDocumentCount:                 documentCount.optional(),
		DateOfFilingDateChange:              dateOfFilingDateChange.optional(),
		EffectivenessDate:                   effectivenessDate.optional(),
		Period:                              period.optional(),
		PeriodStart:                         periodStart.optional(),
		ActionDate:                          actionDate.optional(),
		ReceivedDate:                        receivedDate.optional(),
		PublicRelDate:                       publicRelDate.optional(),
		Timestamp:                           timestamp.optional(),
		Filers:                              filers,
		ReportingOwners:                     reportingOwners,
		SubjectCompanies:                    subjectCompanies,
		FiledFor:                            filedFor,
		FiledBy:                             filedBy,
		Issuer:                              deref(issuer.optional()),
		Depositor:                           deref(depositor.optional()),
		Securitizer:                         deref(securitizer.optional()),
		SeriesAndClassesContractsData:       deref(seriesData.optional()),
		GroupMembers:                        groupMembers,
		Reference462B:                       reference462B.optional(),
		References429:                       references429.optional(),
		MAIIndividual:                       maIIndividual.optional(),
		ABSRule:                             absRule.optional(),
		ABSAssetClass:                       absAssetClass.optional(),
		DepositorCIK:                        depositorCIK.optional(),
		SponsorCIK:                          sponsorCIK.optional(),
		SecuritizerCIK:                      securitizerCIK.optional(),
		IssuingEntityCIK:                    issuingEntityCIK.optional(),
		IssuingEntityName:                   issuingEntityName.optional(),
		SecuritizerFileNumber:               securitizerFileNumber.optional(),
		DepositorFileNumber:                 depositorFileNumber.optional(),
		Category:                            category.optional(),
		PublicReferenceAcc:                  publicReferenceAcc.optional(),
		SROS:                                sros.optional(),
		PreviousAccessionNumber:             previousAccessionNumber.optional(),
		IsFilerANewRegistrant:               isFilerANewRegistrant.optional(),
		IsFilerAWellKnownSeasonedIssuer:     isFilerAWellKnownSeasonedIssuer.optional(),
		FiledPursuantToGeneralInstructionA2: filedPursuantToA2.optional(),
		IsFund24F2Eligible:                  isFund24F2Eligible.optional(),
		NoQuarterlyActivity:                 noQuarterlyActivity.optional(),
		NoAnnualActivity:                    noAnnualActivity.optional(),
		RegisteredEntity:                    registeredEntity.optional(),
		Paper:                               paper,
		PrivateToPublic:                     privateToPublic,
		Deletion:                            deletion,
		Correction:                          correction,
		ConfirmingCopy:                      deref(confirmingCopy.optional()),
	}, nil
}
