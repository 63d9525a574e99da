package aws

import (
	"errors"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/smithy-go"

	"github.com/majorcontext/execrole/internal/provider"
)

// errCodeNoSuchEntity is the IAM error code for a missing role or policy.
const errCodeNoSuchEntity = "NoSuchEntity"

// IsNotFound reports whether err means the IAM entity does not exist.
// Throttling, access denied and transport failures are not "not found".
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, provider.ErrNotFound) {
		return true
	}

	var nse *iamtypes.NoSuchEntityException
	if errors.As(err, &nse) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == errCodeNoSuchEntity {
		return true
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound {
		return true
	}
	return false
}
