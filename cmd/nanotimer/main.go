// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// nanotimer configures the Nano103 timers from the command line.
package main

import (
	"log"
)

func main() {
	e := new(env)
	err := newRootCmd(e).Execute()
	e.close()
	if err != nil {
		log.Fatalf("%s", err)
	}
}
