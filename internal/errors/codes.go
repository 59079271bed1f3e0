// Copyright 2024 The Slice Authors
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

// Code is a stable, documented diagnostic code. Error codes start with
// "E", warning codes with "W".
type Code string

// Severity classifies a diagnostic. Errors always fail compilation; warnings
// only do so under Options.WarnAsError.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Error codes, one per distinct diagnostic condition the core detects.
const (
	IO                                         Code = "E001"
	Syntax                                     Code = "E002"
	DoesNotExist                               Code = "E003"
	Redefinition                               Code = "E004"
	ShadowedMember                             Code = "E005"
	CannotBeUsedAsType                         Code = "E006"
	NotSupportedInCompilationMode              Code = "E007"
	UnsupportedType                            Code = "E008"
	InfiniteSizeCycle                          Code = "E009"
	KeyMustBeNonOptional                       Code = "E010"
	StructKeyMustBeCompact                     Code = "E011"
	KeyTypeNotSupported                        Code = "E012"
	EnumeratorValueOutOfBounds                 Code = "E013"
	DuplicateEnumeratorValue                   Code = "E014"
	EnumUnderlyingTypeNotSupported             Code = "E015"
	CannotUseOptionalUnderlyingType             Code = "E016"
	MustContainEnumerators                     Code = "E017"
	StreamedMembersMustBeLast                  Code = "E018"
	MultipleStreamedMembers                    Code = "E019"
	ReturnTuplesMustContainAtLeastTwoElements  Code = "E020"
	CompactStructCannotBeEmpty                 Code = "E021"
	CompactStructCannotContainTaggedFields     Code = "E022"
	TagValueOutOfBounds                        Code = "E023"
	CannotHaveDuplicateTag                     Code = "E024"
	TaggedMemberMustBeOptional                 Code = "E025"
	CannotTagClass                             Code = "E026"
	CannotTagContainingClass                   Code = "E027"
	RequiredMustPrecedeTagged                  Code = "E028"
	UnexpectedAttribute                        Code = "E029"
	ArgumentNotSupported                       Code = "E030"
	MissingRequiredArgument                    Code = "E031"
	AttributeIsNotRepeatable                   Code = "E032"
	InvalidEncodingVersion                     Code = "E033"
	MultipleEncodingVersions                   Code = "E034"
	TypeAliasOfOptional                        Code = "E035"
	CommentParamDoesNotExist                   Code = "E036"
	CommentReturnsOnVoidOperation              Code = "E037"
	CommentThrowsMismatch                      Code = "E038"
	CommentLinkDoesNotResolve                  Code = "E039"
	InvalidUnderlyingType                      Code = "E040"
)

// Warning codes.
const (
	WDocComment   Code = "W001"
	WDeprecated   Code = "W002"
	WUnknownAllow Code = "W003"
)

// allWarningCodes lists every known warning code, used to validate
// allow(...) attribute arguments in the attribute validator.
var allWarningCodes = map[Code]bool{
	WDocComment:   true,
	WDeprecated:   true,
	WUnknownAllow: true,
}

// IsKnownWarningCode reports whether code names a warning this compiler can
// emit, or is the special "All" wildcard.
func IsKnownWarningCode(code string) bool {
	if code == "All" {
		return true
	}
	return allWarningCodes[Code(code)]
}
