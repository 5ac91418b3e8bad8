package forth

// @generated from forth_test.go

//go:generate go run scripts/gen_expects.go -- forth_test.go expects_test.go

func withForthOptions(opts ...Option) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withOptions(opts...)
	}
}

func withForthStack(values ...int) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.withStack(values...)
	}
}

func expectForthError(err error) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectError(err)
	}
}

func expectForthStack(values ...int) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectStack(values...)
	}
}

func expectForthFormat(s string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectFormat(s)
	}
}

func expectForthWord(name string, body ...string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectWord(name, body...)
	}
}

func expectForthNoWord(name string) func(forthTestCase) forthTestCase {
	return func(ft forthTestCase) forthTestCase {
		return ft.expectNoWord(name)
	}
}
