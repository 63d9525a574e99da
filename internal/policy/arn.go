package policy

import (
	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

// Partition is the ARN partition used for every locator built here.
const Partition = "aws"

// AccountRootARN returns the root principal ARN for an account,
// e.g. arn:aws:iam::222222222222:root.
func AccountRootARN(accountID string) string {
	return arn.ARN{
		Partition: Partition,
		Service:   "iam",
		AccountID: accountID,
		Resource:  "root",
	}.String()
}

// ExecuteAPIARN returns the wildcard execute-api locator covering every
// stage, method and path of a REST API:
//
//	arn:aws:execute-api:<region>:<accountID>:<restAPIID>/*
func ExecuteAPIARN(region, accountID, restAPIID string) string {
	return arn.ARN{
		Partition: Partition,
		Service:   "execute-api",
		Region:    region,
		AccountID: accountID,
		Resource:  restAPIID + "/*",
	}.String()
}
