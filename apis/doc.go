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

// Package apis defines the public contracts for exposing doption reasons at
// transport boundaries.
//
// The goal of this package is to provide small, composable interfaces and
// view types that the HTTP and gRPC adapters can target without importing
// each other or depending on any concrete mapper implementation. Concrete
// types (reason.Error, mapper.New's snapshot) implement or produce these
// shapes; callers should rely on the contracts, not the concretes.
//
// This package must remain lightweight: interfaces, view structs, and the
// Status pair only.
package apis
