// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package cli provides the root command for the schemaerr CLI.

This package creates the Cobra root command and handles global concerns like
version information, persistent flags, and exit codes. Individual commands
are implemented in the internal/commands subpackages.

# Command Tree

	schemaerr
	├── validate      Validate documents against a JSON Schema
	├── kinds         List validation error kinds
	└── version       Show version

# Exit Codes

	0  success
	1  execution failed (unreadable schema or document)
	2  at least one document is invalid
	3  invalid flags or configuration
*/
package cli
