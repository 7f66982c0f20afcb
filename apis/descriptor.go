/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// ErrorDescriptor is a flat description of a registered code together with
// the statuses a Mapper resolved for it. Tooling prints it; transports may
// publish it as documentation.
type ErrorDescriptor struct {
	// Code is the numeric code.
	Code int `json:"code" yaml:"code"`

	// Name is the symbolic name.
	Name string `json:"name" yaml:"name"`

	// Category is the category name.
	Category string `json:"category" yaml:"category"`

	// HTTPStatus is the resolved HTTP status.
	HTTPStatus int `json:"httpStatus" yaml:"httpStatus"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpcCode" yaml:"grpcCode"`

	// Message is the default human message.
	Message string `json:"message" yaml:"message"`
}
