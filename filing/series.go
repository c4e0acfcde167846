package filing

import (
	"github.com/paulgb/sec-data-parser/sgml"
)

// ClassContract is a share class within a fund series.
type ClassContract struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TickerSymbol *string `json:"ticker_symbol,omitempty"`
}

func decodeClassContract(entity string, children []*sgml.Node) (*ClassContract, error) {
	id := newOne[string](entity, string(sgml.ValClassContractID))
	name := newOne[string](entity, string(sgml.ValClassContractName))
	ticker := newOne[string](entity, string(sgml.ValClassContractTicker))

	for _, child := range children {
		if child.Kind != sgml.NodeValue {
			return nil, unrecognized(entity, child)
		}
		var err error
		switch child.Value {
		case sgml.ValClassContractID:
			err = id.set(child.Text)
		case sgml.ValClassContractName:
			err = name.set(child.Text)
		case sgml.ValClassContractTicker:
			err = ticker.set(child.Text)
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	cid, err := id.required()
	if err != nil {
		return nil, err
	}
	cname, err := name.required()
	if err != nil {
		return nil, err
	}
	return &ClassContract{ID: cid, Name: cname, TickerSymbol: ticker.optional()}, nil
}

// Series is one fund series, owning zero or more class contracts.
type Series struct {
	OwnerCIK       *string         `json:"owner_cik,omitempty"`
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ClassContracts []ClassContract `json:"class_contracts,omitempty"`
}

func decodeSeries(entity string, children []*sgml.Node) (*Series, error) {
	ownerCIK := newOne[string](entity, string(sgml.ValOwnerCIK))
	id := newOne[string](entity, string(sgml.ValSeriesID))
	name := newOne[string](entity, string(sgml.ValSeriesName))
	var classContracts []ClassContract

	for _, child := range children {
		var err error
		switch child.Kind {
		case sgml.NodeValue:
			switch child.Value {
			case sgml.ValOwnerCIK:
				err = ownerCIK.set(child.Text)
			case sgml.ValSeriesID:
				err = id.set(child.Text)
			case sgml.ValSeriesName:
				err = name.set(child.Text)
			default:
				err = unrecognized(entity, child)
			}
		case sgml.NodeContainer:
			if child.Container != sgml.TagClassContract {
				return nil, unrecognized(entity, child)
			}
			var cc *ClassContract
			if cc, err = decodeClassContract(string(child.Container), child.Children); err == nil {
				classContracts = append(classContracts, *cc)
			}
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	sid, err := id.required()
	if err != nil {
		return nil, err
	}
	sname, err := name.required()
	if err != nil {
		return nil, err
	}
	return &Series{
		OwnerCIK:       ownerCIK.optional(),
		ID:             sid,
		Name:           sname,
		ClassContracts: classContracts,
	}, nil
}

// AcquiringData names the surviving series of a merger.
type AcquiringData struct {
	CIK    string `json:"cik"`
	Series Series `json:"series"`
}

func decodeAcquiringData(entity string, children []*sgml.Node) (*AcquiringData, error) {
	cik := newOne[string](entity, string(sgml.ValCIK))
	series := newOne[*Series](entity, string(sgml.TagSeries))

	for _, child := range children {
		var err error
		switch {
		case child.Kind == sgml.NodeValue && child.Value == sgml.ValCIK:
			err = cik.set(child.Text)
		case child.Kind == sgml.NodeContainer && child.Container == sgml.TagSeries:
			err = setDecoded(&series, string(child.Container), child.Children, decodeSeries)
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	id, err := cik.required()
	if err != nil {
		return nil, err
	}
	s, err := series.required()
	if err != nil {
		return nil, err
	}
	return &AcquiringData{CIK: id, Series: *s}, nil
}

// TargetData names the series absorbed by a merger; one target block may
// carry several series.
type TargetData struct {
	CIK    string   `json:"cik"`
	Series []Series `json:"series,omitempty"`
}

func decodeTargetData(entity string, children []*sgml.Node) (*TargetData, error) {
	cik := newOne[string](entity, string(sgml.ValCIK))
	var series []Series

	for _, child := range children {
		var err error
		switch {
		case child.Kind == sgml.NodeValue && child.Value == sgml.ValCIK:
			err = cik.set(child.Text)
		case child.Kind == sgml.NodeContainer && child.Container == sgml.TagSeries:
			var s *Series
			if s, err = decodeSeries(string(child.Container), child.Children); err == nil {
				series = append(series, *s)
			}
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	id, err := cik.required()
	if err != nil {
		return nil, err
	}
	return &TargetData{CIK: id, Series: series}, nil
}

// Merger relates an acquiring series to one or more targets.
type Merger struct {
	Acquiring AcquiringData `json:"acquiring"`
	Targets   []TargetData  `json:"targets"`
}

func decodeMerger(entity string, children []*sgml.Node) (*Merger, error) {
	acquiring := newOne[*AcquiringData](entity, string(sgml.TagAcquiringData))
	var targets []TargetData

	for _, child := range children {
		if child.Kind != sgml.NodeContainer {
			return nil, unrecognized(entity, child)
		}
		var err error
		switch child.Container {
		case sgml.TagAcquiringData:
			err = setDecoded(&acquiring, string(child.Container), child.Children, decodeAcquiringData)
		case sgml.TagTargetData:
			var td *TargetData
			if td, err = decodeTargetData(string(child.Container), child.Children); err == nil {
				targets = append(targets, *td)
			}
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	acq, err := acquiring.required()
	if err != nil {
		return nil, err
	}
	return &Merger{Acquiring: *acq, Targets: targets}, nil
}

// SeriesAndClassesContracts lists existing series.
type SeriesAndClassesContracts struct {
	Series []Series `json:"series,omitempty"`
}

func decodeSeriesAndClassesContracts(entity string, children []*sgml.Node) (*SeriesAndClassesContracts, error) {
	var series []Series
	for _, child := range children {
		if child.Kind != sgml.NodeContainer || child.Container != sgml.TagSeries {
			return nil, unrecognized(entity, child)
		}
		s, err := decodeSeries(string(child.Container), child.Children)
		if err != nil {
			return nil, err
		}
		series = append(series, *s)
	}
	return &SeriesAndClassesContracts{Series: series}, nil
}

// MergerSeriesAndClassContracts lists merger relationships.
type MergerSeriesAndClassContracts struct {
	Mergers []Merger `json:"mergers,omitempty"`
}

func decodeMergerSeriesAndClassContracts(entity string, children []*sgml.Node) (*MergerSeriesAndClassContracts, error) {
	var mergers []Merger
	for _, child := range children {
		if child.Kind != sgml.NodeContainer || child.Container != sgml.TagMerger {
			return nil, unrecognized(entity, child)
		}
		m, err := decodeMerger(string(child.Container), child.Children)
		if err != nil {
			return nil, err
		}
		mergers = append(mergers, *m)
	}
	return &MergerSeriesAndClassContracts{Mergers: mergers}, nil
}

// NewSeriesAndClassesContracts lists series and classes being registered.
type NewSeriesAndClassesContracts struct {
	OwnerCIK           *string  `json:"owner_cik,omitempty"`
	NewSeries          []Series `json:"new_series,omitempty"`
	NewClassesContract []Series `json:"new_classes_contracts,omitempty"`
}

func decodeNewSeriesAndClassesContracts(entity string, children []*sgml.Node) (*NewSeriesAndClassesContracts, error) {
	ownerCIK := newOne[string](entity, string(sgml.ValOwnerCIK))
	var newSeries, newClasses []Series

	for _, child := range children {
		var err error
		switch {
		case child.Kind == sgml.NodeValue && child.Value == sgml.ValOwnerCIK:
			err = ownerCIK.set(child.Text)
		case child.Kind == sgml.NodeContainer && child.Container == sgml.TagNewSeries:
			var s *Series
			if s, err = decodeSeries(string(child.Container), child.Children); err == nil {
				newSeries = append(newSeries, *s)
			}
		case child.Kind == sgml.NodeContainer && child.Container == sgml.TagNewClassesContracts:
			var s *Series
			if s, err = decodeSeries(string(child.Container), child.Children); err == nil {
				newClasses = append(newClasses, *s)
			}
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	return &NewSeriesAndClassesContracts{
		OwnerCIK:           ownerCIK.optional(),
		NewSeries:          newSeries,
		NewClassesContract: newClasses,
	}, nil
}

// SeriesAndClassesContractsData is the fund metadata subtree of a submission.
type SeriesAndClassesContractsData struct {
	Existing *SeriesAndClassesContracts     `json:"existing,omitempty"`
	Merger   *MergerSeriesAndClassContracts `json:"merger,omitempty"`
	New      *NewSeriesAndClassesContracts  `json:"new,omitempty"`
}

func decodeSeriesAndClassesContractsData(entity string, children []*sgml.Node) (*SeriesAndClassesContractsData, error) {
	existing := newOne[*SeriesAndClassesContracts](entity, string(sgml.TagExistingSeriesAndClassesContracts))
	merger := newOne[*MergerSeriesAndClassContracts](entity, string(sgml.TagMergerSeriesAndClassesContracts))
	newContracts := newOne[*NewSeriesAndClassesContracts](entity, string(sgml.TagNewSeriesAndClassesContracts))

	for _, child := range children {
		if child.Kind != sgml.NodeContainer {
			return nil, unrecognized(entity, child)
		}
		var err error
		switch child.Container {
		case sgml.TagExistingSeriesAndClassesContracts:
			err = setDecoded(&existing, string(child.Container), child.Children, decodeSeriesAndClassesContracts)
		case sgml.TagMergerSeriesAndClassesContracts:
			err = setDecoded(&merger, string(child.Container), child.Children, decodeMergerSeriesAndClassContracts)
		case sgml.TagNewSeriesAndClassesContracts:
			err = setDecoded(&newContracts, string(child.Container), child.Children, decodeNewSeriesAndClassesContracts)
		default:
			err = unrecognized(entity, child)
		}
		if err != nil {
			return nil, err
		}
	}

	return &SeriesAndClassesContractsData{
		Existing: deref(existing.optional()),
		Merger:   deref(merger.optional()),
		New:      deref(newContracts.optional()),
	}, nil
}
