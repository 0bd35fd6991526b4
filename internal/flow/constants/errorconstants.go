/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package constants

import "github.com/invity/authflow/internal/system/error/serviceerror"

// Client error structs

// ErrorFlowResponse is used when the identity server answers a flow request with an error.
var ErrorFlowResponse = serviceerror.ServiceError{
	Code:             "AFO-60001",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid flow",
	ErrorDescription: "The identity server returned an error for the flow",
}

// ErrorInvalidFlowType is used when a flow type cannot be handled.
var ErrorInvalidFlowType = serviceerror.ServiceError{
	Code:             "AFO-60002",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid configuration",
	ErrorDescription: "Unexpected flow type",
}

// ErrorInvalidFrameLocation is used when the frame location cannot produce a flow context.
var ErrorInvalidFrameLocation = serviceerror.ServiceError{
	Code:             "AFO-60003",
	Type:             serviceerror.ClientErrorType,
	Error:            "Invalid configuration",
	ErrorDescription: "The frame location does not carry a valid identity server URL",
}

// Server error structs

// ErrorIdentityServerUnreachable is used when a request to the identity server fails.
var ErrorIdentityServerUnreachable = serviceerror.ServiceError{
	Code:             "AFO-65001",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Failed to reach the identity server",
}

// ErrorInvalidResponse is used when an identity server response cannot be decoded.
var ErrorInvalidResponse = serviceerror.ServiceError{
	Code:             "AFO-65002",
	Type:             serviceerror.ServerErrorType,
	Error:            "Something went wrong",
	ErrorDescription: "Failed to decode the identity server response",
}
