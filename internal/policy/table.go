package policy

import "docval/internal/domain"

// builtinEntries is the policy table shipped with the binary. Countries are
// listed in display order.
var builtinEntries = []domain.PolicyEntry{
	{
		Key: domain.PolicyKey{Country: "Colombia", PersonType: domain.PersonTypeNatural},
		Policy: domain.DocumentPolicy{
			IDLabel:       "CC / NIT",
			RequiredKinds: []string{"RUT", "Documento de identidad", "Certificado Bancario"},
			MaxAgeDays: map[string]int{
				"RUT":                    365,
				"Documento de identidad": 3650,
				"Certificado Bancario":   90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Colombia", PersonType: domain.PersonTypeLegal},
		Policy: domain.DocumentPolicy{
			IDLabel:       "NIT",
			RequiredKinds: []string{"RUT", "Camara de Comercio", "Certificado Bancario"},
			MaxAgeDays: map[string]int{
				"RUT":                  365,
				"Camara de Comercio":   30,
				"Certificado Bancario": 90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Mexico", PersonType: domain.PersonTypeNatural},
		Policy: domain.DocumentPolicy{
			IDLabel:       "RFC",
			RequiredKinds: []string{"Constancia de Situacion Fiscal", "INE", "Estado de cuenta"},
			MaxAgeDays: map[string]int{
				"Constancia de Situacion Fiscal": 365,
				"INE":                            3650,
				"Estado de cuenta":               60,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Mexico", PersonType: domain.PersonTypeLegal},
		Policy: domain.DocumentPolicy{
			IDLabel:       "RFC",
			RequiredKinds: []string{"Constancia de Situacion Fiscal", "Acta constitutiva", "Poder legal", "Estado de cuenta"},
			MaxAgeDays: map[string]int{
				"Constancia de Situacion Fiscal": 365,
				"Acta constitutiva":              3650,
				"Poder legal":                    3650,
				"Estado de cuenta":               60,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Brasil", PersonType: domain.PersonTypeNatural},
		Policy: domain.DocumentPolicy{
			IDLabel:       "CPF",
			RequiredKinds: []string{"CPF", "RG", "Comprovante de endereço", "Extrato bancario"},
			MaxAgeDays: map[string]int{
				"CPF":                     3650,
				"RG":                      3650,
				"Comprovante de endereço": 90,
				"Extrato bancario":        60,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Brasil", PersonType: domain.PersonTypeLegal},
		Policy: domain.DocumentPolicy{
			IDLabel:       "CNPJ",
			RequiredKinds: []string{"CNPJ", "Contrato social", "Comprovante de endereço", "Extrato bancario"},
			MaxAgeDays: map[string]int{
				"CNPJ":                    365,
				"Contrato social":         3650,
				"Comprovante de endereço": 90,
				"Extrato bancario":        60,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Argentina", PersonType: domain.PersonTypeNatural},
		Policy: domain.DocumentPolicy{
			IDLabel:       "CUIL / DNI",
			RequiredKinds: []string{"CUIL", "DNI", "Constancia de CBU"},
			MaxAgeDays: map[string]int{
				"CUIL":              365,
				"DNI":               3650,
				"Constancia de CBU": 90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Argentina", PersonType: domain.PersonTypeLegal},
		Policy: domain.DocumentPolicy{
			IDLabel:       "CUIT",
			RequiredKinds: []string{"CUIT", "Estatuto / Contrato social", "Acta de directorio", "Constancia de CBU"},
			MaxAgeDays: map[string]int{
				"CUIT":                       365,
				"Estatuto / Contrato social": 3650,
				"Acta de directorio":         3650,
				"Constancia de CBU":          90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Chile", PersonType: domain.PersonTypeNatural},
		Policy: domain.DocumentPolicy{
			IDLabel:       "RUT",
			RequiredKinds: []string{"RUT", "Cedula de identidad", "Certificado de cuenta bancaria"},
			MaxAgeDays: map[string]int{
				"RUT":                            365,
				"Cedula de identidad":            3650,
				"Certificado de cuenta bancaria": 90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Chile", PersonType: domain.PersonTypeLegal},
		Policy: domain.DocumentPolicy{
			IDLabel:       "RUT",
			RequiredKinds: []string{"RUT", "Escritura de constitucion", "Certificado de vigencia", "Certificado de cuenta bancaria"},
			MaxAgeDays: map[string]int{
				"RUT":                            365,
				"Escritura de constitucion":      3650,
				"Certificado de vigencia":        365,
				"Certificado de cuenta bancaria": 90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Perú", PersonType: domain.PersonTypeNatural},
		Policy: domain.DocumentPolicy{
			IDLabel:       "DNI / RUC",
			RequiredKinds: []string{"RUC", "DNI", "Estado de cuenta"},
			MaxAgeDays: map[string]int{
				"RUC":              365,
				"DNI":              3650,
				"Estado de cuenta": 60,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Perú", PersonType: domain.PersonTypeLegal},
		Policy: domain.DocumentPolicy{
			IDLabel:       "RUC",
			RequiredKinds: []string{"RUC", "Ficha RUC", "Vigencia de poder", "Estado de cuenta"},
			MaxAgeDays: map[string]int{
				"RUC":               365,
				"Ficha RUC":         365,
				"Vigencia de poder": 365,
				"Estado de cuenta":  60,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Ecuador", PersonType: domain.PersonTypeNatural},
		Policy: domain.DocumentPolicy{
			IDLabel:       "CED / RUC",
			RequiredKinds: []string{"RUC", "Cedula", "Certificado bancario"},
			MaxAgeDays: map[string]int{
				"RUC":                  365,
				"Cedula":               3650,
				"Certificado bancario": 90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Ecuador", PersonType: domain.PersonTypeLegal},
		Policy: domain.DocumentPolicy{
			IDLabel:       "RUC",
			RequiredKinds: []string{"RUC", "Nombramiento representante legal", "Certificado bancario"},
			MaxAgeDays: map[string]int{
				"RUC":                              365,
				"Nombramiento representante legal": 365,
				"Certificado bancario":             90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Uruguay", PersonType: domain.PersonTypeNatural},
		Policy: domain.DocumentPolicy{
			IDLabel:       "CI / RUT",
			RequiredKinds: []string{"RUT", "Cedula de identidad", "Constancia bancaria"},
			MaxAgeDays: map[string]int{
				"RUT":                 365,
				"Cedula de identidad": 3650,
				"Constancia bancaria": 90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Uruguay", PersonType: domain.PersonTypeLegal},
		Policy: domain.DocumentPolicy{
			IDLabel:       "RUT",
			RequiredKinds: []string{"RUT", "Contrato social", "Certificado bancario"},
			MaxAgeDays: map[string]int{
				"RUT":                  365,
				"Contrato social":      3650,
				"Certificado bancario": 90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Costa Rica", PersonType: domain.PersonTypeNatural},
		Policy: domain.DocumentPolicy{
			IDLabel:       "Cédula / N° ID",
			RequiredKinds: []string{"Cedula de identidad", "Comprobante de cuenta cliente"},
			MaxAgeDays: map[string]int{
				"Cedula de identidad":           3650,
				"Comprobante de cuenta cliente": 90,
			},
		},
	},
	{
		Key: domain.PolicyKey{Country: "Costa Rica", PersonType: domain.PersonTypeLegal},
		Policy: domain.DocumentPolicy{
			IDLabel:       "Cédula jurídica",
			RequiredKinds: []string{"Cedula juridica", "Personeria juridica", "Comprobante de cuenta cliente"},
			MaxAgeDays: map[string]int{
				"Cedula juridica":               365,
				"Personeria juridica":           365,
				"Comprobante de cuenta cliente": 90,
			},
		},
	},
}

// BuiltinEntries returns a copy of the built-in policy table.
func BuiltinEntries() []domain.PolicyEntry {
	out := make([]domain.PolicyEntry, len(builtinEntries))
	for i, e := range builtinEntries {
		out[i] = domain.PolicyEntry{Key: e.Key, Policy: *e.Policy.Clone()}
	}
	return out
}
