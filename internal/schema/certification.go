package schema

import "fmt"

// Certification is one license or qualification record.
//
// DateOfQualification is kept as raw text: consumers sort it with plain
// lexicographic comparison, which is only chronological when every date
// uses a common zero-padded form such as "YYYY-MM". That assumption is
// documented, not enforced here.
type Certification struct {
	ID                  string
	Name                string
	OrgName             string
	ResultLabel         string
	SVGPath             string
	DateOfQualification string
}

func parseCertification(value any, ctx Context, path string) (Certification, error) {
	m, ok := record(value)
	if !ok {
		return Certification{}, errf(ctx, path, "must be an object")
	}

	var cert Certification
	var err error
	if cert.ID, err = optionalString(m["id"], ctx, path+".id"); err != nil {
		return Certification{}, err
	}
	if cert.Name, err = optionalString(m["name"], ctx, path+".name"); err != nil {
		return Certification{}, err
	}
	if cert.OrgName, err = optionalString(m["org_name"], ctx, path+".org_name"); err != nil {
		return Certification{}, err
	}
	if cert.ResultLabel, err = optionalString(m["result_label"], ctx, path+".result_label"); err != nil {
		return Certification{}, err
	}
	if cert.SVGPath, err = optionalString(m["svg_path"], ctx, path+".svg_path"); err != nil {
		return Certification{}, err
	}
	if cert.DateOfQualification, err = optionalDateString(m["DateOfQualification"], ctx, path+".DateOfQualification"); err != nil {
		return Certification{}, err
	}
	return cert, nil
}

// ParseCertifications validates the root of certifications.yml. A missing
// certifications key is an empty collection.
func ParseCertifications(value any, ctx Context) ([]Certification, error) {
	root, ok := record(value)
	if !ok {
		return nil, errf(ctx, "", "root must be an object")
	}

	switch certsRaw := root["certifications"].(type) {
	case nil:
		return []Certification{}, nil
	case []any:
		certs := make([]Certification, 0, len(certsRaw))
		for i, item := range certsRaw {
			cert, err := parseCertification(item, ctx, fmt.Sprintf("certifications[%d]", i))
			if err != nil {
				return nil, err
			}
			certs = append(certs, cert)
		}
		return certs, nil
	default:
		return nil, errf(ctx, "certifications", "must be an array")
	}
}
