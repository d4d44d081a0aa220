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

// Package eval implements the tree-walking evaluator: special-form
// dispatch, parameter destructuring, application by callee tag, first-class
// continuations via a panic/recover escape, and the error kinds a running
// program can raise.
//
// Eval is structured around an explicit loop that rebinds the expression
// and environment in place for every tail position instead of recursing,
// so chained tail calls run in constant stack space.
package eval
