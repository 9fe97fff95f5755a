package gradient_test

import (
	"fmt"

	"github.com/gogpu/gradient"
)

func ExampleCSS() {
	stops := []gradient.ColorStop{
		{Color: gradient.MustParseHex("#ff0000"), Position: 0, Opacity: 1},
		{Color: gradient.MustParseHex("#0000ff"), Position: 100, Opacity: 1},
	}
	d, err := gradient.NewDescriptor(stops, gradient.LinearGeometry{AngleDegrees: 45})
	if err != nil {
		panic(err)
	}
	fmt.Println(gradient.CSS(d))
	// Output: linear-gradient(45deg, rgba(255,0,0,1) 0%, rgba(0,0,255,1) 100%)
}

func ExampleSwiftUI() {
	e := gradient.NewEditor()
	_ = e.SetType(gradient.Radial)
	e.SetRadial(50, 50, 0, 100)
	d, err := e.Descriptor()
	if err != nil {
		panic(err)
	}
	fmt.Println(gradient.SwiftUI(d, gradient.WithVariableName("night sky")))
	// Output:
	// let nightSky = RadialGradient(
	//     gradient: Gradient(colors: [
	//         Color(red: 0.102, green: 0.102, blue: 0.251, opacity: 1),
	//         Color(red: 0.302, green: 0.302, blue: 1, opacity: 1)
	//     ]),
	//     center: UnitPoint(x: 0.5, y: 0.5),
	//     startRadius: 0,
	//     endRadius: 1
	// )
}

func ExampleStopList_SetPosition() {
	l := gradient.NewStopList()
	stored, _ := l.SetPosition(0, 150)
	fmt.Println(stored)
	// Output: 100
}

func ExampleIdentifier() {
	fmt.Println(gradient.Identifier("Ocean sunset"))
	// Output: oceanSunset
}
