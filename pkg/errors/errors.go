// Copyright (c) 2021 Andy Pan
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

package errors

import "errors"

var (
	// ErrEmptyQueue occurs when peeking into a queue that holds no element.
	ErrEmptyQueue = errors.New("queuebench: queue is empty")
	// ErrInvalidCapacity occurs when a queue is created with a negative capacity.
	ErrInvalidCapacity = errors.New("queuebench: invalid queue capacity")
	// ErrCapacityOverflow occurs when doubling the capacity would overflow int.
	ErrCapacityOverflow = errors.New("queuebench: queue capacity overflow")
	// ErrInvalidOperations occurs when the benchmark is configured with a non-positive operation count.
	ErrInvalidOperations = errors.New("queuebench: operations must be greater than 0")
	// ErrQueueNotDrained occurs when a queue still holds elements after the dequeue phase.
	ErrQueueNotDrained = errors.New("queuebench: queue is not empty after draining")
	// ErrUnsupportedKind occurs when a queue kind is not recognized.
	ErrUnsupportedKind = errors.New("queuebench: unsupported queue kind")
)
