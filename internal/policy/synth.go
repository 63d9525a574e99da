package policy

// Fixed identifiers used in the synthesized documents.
const (
	GatewayServicePrincipal = "apigateway.amazonaws.com"
	AssumeRoleAction        = "sts:AssumeRole"
	InvokeAction            = "execute-api:Invoke"
	EffectAllow             = "Allow"
)

// TrustPolicy builds the assume-role document for the execute-api role.
//
// The AWS principal list is allowed followed by the caller's own account
// root. Entries are not deduplicated and allowed is never modified.
func TrustPolicy(accountID string, allowed []string) *Document {
	principals := make([]string, 0, len(allowed)+1)
	principals = append(principals, allowed...)
	principals = append(principals, AccountRootARN(accountID))

	return &Document{
		Version: Version,
		Statement: []Statement{{
			Effect: EffectAllow,
			Principal: &Principal{
				Service: []string{GatewayServicePrincipal},
				AWS:     principals,
			},
			Action: []string{AssumeRoleAction},
		}},
	}
}

// InvokePolicy builds the inline permission document granting invoke rights
// on every stage and method of the given REST API.
func InvokePolicy(region, accountID, restAPIID string) *Document {
	return &Document{
		Version: Version,
		Statement: []Statement{{
			Effect:   EffectAllow,
			Action:   InvokeAction,
			Resource: []string{ExecuteAPIARN(region, accountID, restAPIID)},
		}},
	}
}
