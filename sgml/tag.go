package sgml

// ContainerTag is a tag name that introduces a nested entity. The set is
// closed: EDGAR dissemination headers use a fixed vocabulary, and any name
// outside it means the input is not a filing archive we understand.
type ContainerTag string

const (
	TagSubmission ContainerTag = "SUBMISSION"

	// Filer entities.
	TagFiler           ContainerTag = "FILER"
	TagCompanyData     ContainerTag = "COMPANY-DATA"
	TagFilingValues    ContainerTag = "FILING-VALUES"
	TagBusinessAddress ContainerTag = "BUSINESS-ADDRESS"
	TagMailAddress     ContainerTag = "MAIL-ADDRESS"
	TagOwnerData       ContainerTag = "OWNER-DATA"
	TagFormerCompany   ContainerTag = "FORMER-COMPANY"
	TagFormerName      ContainerTag = "FORMER-NAME"
	TagReportingOwner  ContainerTag = "REPORTING-OWNER"
	TagIssuer          ContainerTag = "ISSUER"
	TagSubjectCompany  ContainerTag = "SUBJECT-COMPANY"
	TagFiledBy         ContainerTag = "FILED-BY"
	TagFiledFor        ContainerTag = "FILED-FOR"
	TagDepositor       ContainerTag = "DEPOSITOR"
	TagSecuritizer     ContainerTag = "SECURITIZER"

	// Documents.
	TagDocument ContainerTag = "DOCUMENT"

	// Fund series and class contracts.
	TagSeriesAndClassesContractsData       ContainerTag = "SERIES-AND-CLASSES-CONTRACTS-DATA"
	TagExistingSeriesAndClassesContracts   ContainerTag = "EXISTING-SERIES-AND-CLASSES-CONTRACTS"
	TagNewSeriesAndClassesContracts        ContainerTag = "NEW-SERIES-AND-CLASSES-CONTRACTS"
	TagMergerSeriesAndClassesContracts     ContainerTag = "MERGER-SERIES-AND-CLASSES-CONTRACTS"
	TagSeries                              ContainerTag = "SERIES"
	TagNewSeries                           ContainerTag = "NEW-SERIES"
	TagNewClassesContracts                 ContainerTag = "NEW-CLASSES-CONTRACTS"
	TagClassContract                       ContainerTag = "CLASS-CONTRACT"
	TagMerger                              ContainerTag = "MERGER"
	TagAcquiringData                       ContainerTag = "ACQUIRING-DATA"
	TagTargetData                          ContainerTag = "TARGET-DATA"

	// Submission wrappers.
	TagConfirmingCopy ContainerTag = "CONFIRMING-COPY"
	TagPaper          ContainerTag = "PAPER"
)

var containerTags = map[ContainerTag]bool{
	TagSubmission:                        true,
	TagFiler:                             true,
	TagCompanyData:                       true,
	TagFilingValues:                      true,
	TagBusinessAddress:                   true,
	TagMailAddress:                       true,
	TagOwnerData:                         true,
	TagFormerCompany:                     true,
	TagFormerName:                        true,
	TagReportingOwner:                    true,
	TagIssuer:                            true,
	TagSubjectCompany:                    true,
	TagFiledBy:                           true,
	TagFiledFor:                          true,
	TagDepositor:                         true,
	TagSecuritizer:                       true,
	TagDocument:                          true,
	TagSeriesAndClassesContractsData:     true,
	TagExistingSeriesAndClassesContracts: true,
	TagNewSeriesAndClassesContracts:      true,
	TagMergerSeriesAndClassesContracts:   true,
	TagSeries:                            true,
	TagNewSeries:                         true,
	TagNewClassesContracts:               true,
	TagClassContract:                     true,
	TagMerger:                            true,
	TagAcquiringData:                     true,
	TagTargetData:                        true,
	TagConfirmingCopy:                    true,
	TagPaper:                             true,
}

// ParseContainerTag resolves a tag name against the container vocabulary.
func ParseContainerTag(name string) (ContainerTag, error) {
	tag := ContainerTag(name)
	if !containerTags[tag] {
		return "", &UnknownTagError{Name: name, Class: TagClassContainer}
	}
	return tag, nil
}

// IsContainerTag reports whether name is in the container vocabulary.
func IsContainerTag(name string) bool {
	return containerTags[ContainerTag(name)]
}

// ValueTag is a tag name whose content is a single scalar.
type ValueTag string

const (
	// Submission scalars.
	ValAccessionNumber                     ValueTag = "ACCESSION-NUMBER"
	ValType                                ValueTag = "TYPE"
	ValPublicDocumentCount                 ValueTag = "PUBLIC-DOCUMENT-COUNT"
	ValItems                               ValueTag = "ITEMS"
	ValFilingDate                          ValueTag = "FILING-DATE"
	ValDateOfFilingDateChange              ValueTag = "DATE-OF-FILING-DATE-CHANGE"
	ValEffectivenessDate                   ValueTag = "EFFECTIVENESS-DATE"
	ValPeriod                              ValueTag = "PERIOD"
	ValPeriodStart                         ValueTag = "PERIOD-START"
	ValActionDate                          ValueTag = "ACTION-DATE"
	ValReceivedDate                        ValueTag = "RECEIVED-DATE"
	ValTimestamp                           ValueTag = "TIMESTAMP"
	ValGroupMembers                        ValueTag = "GROUP-MEMBERS"
	ValReference462B                       ValueTag = "REFERENCE-462B"
	ValReferences429                       ValueTag = "REFERENCES-429"
	ValIsFilerANewRegistrant               ValueTag = "IS-FILER-A-NEW-REGISTRANT"
	ValIsFilerAWellKnownSeasonedIssuer     ValueTag = "IS-FILER-A-WELL-KNOWN-SEASONED-ISSUER"
	ValFiledPursuantToGeneralInstructionA2 ValueTag = "FILED-PURSUANT-TO-GENERAL-INSTRUCTION-A2"
	ValIsFund24F2Eligible                  ValueTag = "IS-FUND-24F2-ELIGIBLE"
	ValMAIIndividual                       ValueTag = "MA-I-INDIVIDUAL"
	ValABSRule                             ValueTag = "ABS-RULE"
	ValABSAssetClass                       ValueTag = "ABS-ASSET-CLASS"
	ValNoQuarterlyActivity                 ValueTag = "NO-QUARTERLY-ACTIVITY"
	ValNoAnnualActivity                    ValueTag = "NO-ANNUAL-ACTIVITY"
	ValDepositorCIK                        ValueTag = "DEPOSITOR-CIK"
	ValSponsorCIK                          ValueTag = "SPONSOR-CIK"
	ValSecuritizerCIK                      ValueTag = "SECURITIZER-CIK"
	ValIssuingEntityCIK                    ValueTag = "ISSUING-ENTITY-CIK"
	ValIssuingEntityName                   ValueTag = "ISSUING-ENTITY-NAME"
	ValSecuritizerFileNumber               ValueTag = "SECURITIZER-FILE-NUMBER"
	ValDepositorFileNumber                 ValueTag = "DEPOSITOR-FILE-NUMBER"
	ValCategory                            ValueTag = "CATEGORY"
	ValRegisteredEntity                    ValueTag = "REGISTERED-ENTITY"
	ValPrivateToPublic                     ValueTag = "PRIVATE-TO-PUBLIC"
	ValPublicReferenceAcc                  ValueTag = "PUBLIC-REFERENCE-ACC"
	ValPublicRelDate                       ValueTag = "PUBLIC-REL-DATE"
	ValDeletion                            ValueTag = "DELETION"
	ValCorrection                          ValueTag = "CORRECTION"
	ValSROS                                ValueTag = "SROS"
	ValPreviousAccessionNumber             ValueTag = "PREVIOUS-ACCESSION-NUMBER"

	// Filing values.
	ValFormType   ValueTag = "FORM-TYPE"
	ValAct        ValueTag = "ACT"
	ValFileNumber ValueTag = "FILE-NUMBER"
	ValFilmNumber ValueTag = "FILM-NUMBER"

	// Company data.
	ValConformedName        ValueTag = "CONFORMED-NAME"
	ValCIK                  ValueTag = "CIK"
	ValIRSNumber            ValueTag = "IRS-NUMBER"
	ValStateOfIncorporation ValueTag = "STATE-OF-INCORPORATION"
	ValFiscalYearEnd        ValueTag = "FISCAL-YEAR-END"
	ValAssignedSIC          ValueTag = "ASSIGNED-SIC"
	ValRelationship         ValueTag = "RELATIONSHIP"

	// Addresses.
	ValStreet1 ValueTag = "STREET1"
	ValStreet2 ValueTag = "STREET2"
	ValCity    ValueTag = "CITY"
	ValState   ValueTag = "STATE"
	ValZip     ValueTag = "ZIP"
	ValPhone   ValueTag = "PHONE"

	// Former names.
	ValFormerConformedName ValueTag = "FORMER-CONFORMED-NAME"
	ValDateChanged         ValueTag = "DATE-CHANGED"

	// Documents.
	ValSequence    ValueTag = "SEQUENCE"
	ValFilename    ValueTag = "FILENAME"
	ValDescription ValueTag = "DESCRIPTION"
	ValFlawed      ValueTag = "FLAWED"

	// Series and class contracts.
	ValOwnerCIK                 ValueTag = "OWNER-CIK"
	ValSeriesID                 ValueTag = "SERIES-ID"
	ValSeriesName               ValueTag = "SERIES-NAME"
	ValClassContractID          ValueTag = "CLASS-CONTRACT-ID"
	ValClassContractName        ValueTag = "CLASS-CONTRACT-NAME"
	ValClassContractTicker      ValueTag = "CLASS-CONTRACT-TICKER-SYMBOL"
)

var valueTags = map[ValueTag]bool{
	ValAccessionNumber:                     true,
	ValType:                                true,
	ValPublicDocumentCount:                 true,
	ValItems:                               true,
	ValFilingDate:                          true,
	ValDateOfFilingDateChange:              true,
	ValEffectivenessDate:                   true,
	ValPeriod:                              true,
	ValPeriodStart:                         true,
	ValActionDate:                          true,
	ValReceivedDate:                        true,
	ValTimestamp:                           true,
	ValGroupMembers:                        true,
	ValReference462B:                       true,
	ValReferences429:                       true,
	ValIsFilerANewRegistrant:               true,
	ValIsFilerAWellKnownSeasonedIssuer:     true,
	ValFiledPursuantToGeneralInstructionA2: true,
	ValIsFund24F2Eligible:                  true,
	ValMAIIndividual:                       true,
	ValABSRule:                             true,
	ValABSAssetClass:                       true,
	ValNoQuarterlyActivity:                 true,
	ValNoAnnualActivity:                    true,
	ValDepositorCIK:                        true,
	ValSponsorCIK:                          true,
	ValSecuritizerCIK:                      true,
	ValIssuingEntityCIK:                    true,
	ValIssuingEntityName:                   true,
	ValSecuritizerFileNumber:               true,
	ValDepositorFileNumber:                 true,
	ValCategory:                            true,
	ValRegisteredEntity:                    true,
	ValPrivateToPublic:                     true,
	ValPublicReferenceAcc:                  true,
	ValPublicRelDate:                       true,
	ValDeletion:                            true,
	ValCorrection:                          true,
	ValSROS:                                true,
	ValPreviousAccessionNumber:             true,
	ValFormType:                            true,
	ValAct:                                 true,
	ValFileNumber:                          true,
	ValFilmNumber:                          true,
	ValConformedName:                       true,
	ValCIK:                                 true,
	ValIRSNumber:                           true,
	ValStateOfIncorporation:                true,
	ValFiscalYearEnd:                       true,
	ValAssignedSIC:                         true,
	ValRelationship:                        true,
	ValStreet1:                             true,
	ValStreet2:                             true,
	ValCity:                                true,
	ValState:                               true,
	ValZip:                                 true,
	ValPhone:                               true,
	ValFormerConformedName:                 true,
	ValDateChanged:                         true,
	ValSequence:                            true,
	ValFilename:                            true,
	ValDescription:                         true,
	ValFlawed:                              true,
	ValOwnerCIK:                            true,
	ValSeriesID:                            true,
	ValSeriesName:                          true,
	ValClassContractID:                     true,
	ValClassContractName:                   true,
	ValClassContractTicker:                 true,
}

// ParseValueTag resolves a tag name against the value vocabulary.
func ParseValueTag(name string) (ValueTag, error) {
	tag := ValueTag(name)
	if !valueTags[tag] {
		return "", &UnknownTagError{Name: name, Class: TagClassValue}
	}
	return tag, nil
}
