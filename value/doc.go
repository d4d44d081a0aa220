// This file is part of arc - https://github.com/arclang/arc
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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

// Package value implements the tagged value representation shared by every
// other package in this module: the reader produces Values, the macro
// expander and evaluator consume and produce Values, and the builtins
// operate exclusively on Values.
//
// A Value is a small struct carrying a Tag and an inline or pointer payload.
// Heap payloads (Pair, Str, Table, Closure, ports, Continuation) are plain Go
// values reached through a pointer; Go's garbage collector reclaims them,
// including any cycles a program builds through mutable Pair or Table slots,
// so unlike the C++ original this package has no reference counts to
// maintain.
//
// This package also owns the process-wide symbol interner (Interner) and the
// lexically scoped environment (Env) used for variable binding.
package value
