package types

// OutputRecord is the synthesized notice entry for one accepted dependency.
// Index is only set when sequential indexes were requested.
type OutputRecord struct {
	Index                *int      `json:"index,omitempty"`
	Name                 string    `json:"name"`
	InputDataLicenseType LicenseID `json:"inputDataLicenseType"`
	Version              string    `json:"version"`
	LicenseText          string    `json:"licenseText"`
}

// OutputEntry keeps the input key alongside the record so keyed output
// can be written in acceptance order.
type OutputEntry struct {
	Key    string
	Record OutputRecord
}
