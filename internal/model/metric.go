package model

// Names of the label dimensions carried by every exported series,
// in the order the script prints them.
const (
	LabelComponent       = "component"
	LabelProcessName     = "process_name"
	LabelApplicationName = "application_name"
	LabelEnv             = "env"
	LabelDomainName      = "domain_name"
	LabelMonType         = "mon_type"
)

// LabelNames lists the label dimensions in exposition order.
func LabelNames() []string {
	return []string{
		LabelComponent,
		LabelProcessName,
		LabelApplicationName,
		LabelEnv,
		LabelDomainName,
		LabelMonType,
	}
}

// LabelKey is the ordered 6-tuple of label values identifying one series.
// Two samples with equal LabelKey belong to the same series.
type LabelKey struct {
	Component       string
	ProcessName     string
	ApplicationName string
	Env             string
	DomainName      string
	MonType         string
}

// Values returns the label values in the same order as LabelNames.
func (k LabelKey) Values() []string {
	return []string{
		k.Component,
		k.ProcessName,
		k.ApplicationName,
		k.Env,
		k.DomainName,
		k.MonType,
	}
}

// Less orders keys lexicographically over the label tuple.
func (k LabelKey) Less(o LabelKey) bool {
	if k.Component != o.Component {
		return k.Component < o.Component
	}
	if k.ProcessName != o.ProcessName {
		return k.ProcessName < o.ProcessName
	}
	if k.ApplicationName != o.ApplicationName {
		return k.ApplicationName < o.ApplicationName
	}
	if k.Env != o.Env {
		return k.Env < o.Env
	}
	if k.DomainName != o.DomainName {
		return k.DomainName < o.DomainName
	}
	return k.MonType < o.MonType
}

// Sample is a single observation parsed from one line of script output.
type Sample struct {
	LabelKey
	Value float64
}
