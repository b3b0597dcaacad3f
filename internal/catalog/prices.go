package catalog

// Vehicle price table, VAT inclusive. Prices are maintained by the studio in
// units of 10,000 KRW, hence the man multiplier. Some models intentionally
// appear once per body revision (F/G) because film consumption differs.
const man = 10_000

var vehicleTable = []Vehicle{
	// BMW
	{Model: "BMW 1시리즈", Size: SizeCompact, Transparent: 450 * man, Wrap: 250 * man, Color: 580 * man},
	{Model: "BMW 3시리즈", Size: SizeSedan, Transparent: 470 * man, Wrap: 270 * man, Color: 580 * man},
	{Model: "BMW 5시리즈", Size: SizeSedan, Transparent: 480 * man, Wrap: 280 * man, Color: 580 * man},
	{Model: "BMW 7시리즈", Size: SizeSedan, Transparent: 520 * man, Wrap: 310 * man, Color: 620 * man},
	{Model: "BMW M2 (F바디)", Size: SizeCompact, Transparent: 480 * man, Wrap: 270 * man, Color: 580 * man},
	{Model: "BMW M2 (G바디)", Size: SizeCompact, Transparent: 480 * man, Wrap: 280 * man, Color: 640 * man},
	{Model: "BMW M3 (F바디)", Size: SizeSedan, Transparent: 470 * man, Wrap: 280 * man, Color: 640 * man},
	{Model: "BMW M3 (G바디)", Size: SizeSedan, Transparent: 490 * man, Wrap: 290 * man, Color: 640 * man},
	{Model: "BMW M4 (F바디)", Size: SizeCompact, Transparent: 470 * man, Wrap: 280 * man, Color: 660 * man},
	{Model: "BMW M4 (G바디)", Size: SizeCompact, Transparent: 490 * man, Wrap: 290 * man, Color: 660 * man},
	{Model: "BMW M5 (F바디)", Size: SizeSedan, Transparent: 500 * man, Wrap: 300 * man, Color: 680 * man},
	{Model: "BMW M5 (G바디)", Size: SizeSedan, Transparent: 510 * man, Wrap: 300 * man, Color: 680 * man},
	{Model: "BMW M8 (그란쿠페)", Size: SizeSedan, Transparent: 500 * man, Wrap: 300 * man, Color: 680 * man},
	{Model: "BMW Z4", Size: SizeCompact, Transparent: 450 * man, Wrap: 250 * man, Color: 600 * man},
	{Model: "BMW X1", Size: SizeSUV, Transparent: 460 * man, Wrap: 280 * man, Color: 600 * man},
	{Model: "BMW X3 / X4", Size: SizeSUV, Transparent: 480 * man, Wrap: 290 * man, Color: 620 * man},
	{Model: "BMW X5", Size: SizeSUV, Transparent: 530 * man, Wrap: 320 * man, Color: 700 * man},
	{Model: "BMW X6", Size: SizeSUV, Transparent: 540 * man, Wrap: 340 * man, Color: 720 * man},
	{Model: "BMW X7", Size: SizeSUV, Transparent: 580 * man, Wrap: 360 * man, Color: 740 * man},
	{Model: "BMW i3", Size: SizeCompact, Transparent: 420 * man, Wrap: 250 * man, Color: 560 * man},
	{Model: "BMW i8", Size: SizeSupercar, Transparent: 460 * man, Wrap: 270 * man, Color: 630 * man},
	// MINI
	{Model: "미니 쿠퍼", Size: SizeCompact, Transparent: 420 * man, Wrap: 220 * man, Color: 530 * man},
	{Model: "미니 컨트리맨", Size: SizeCompact, Transparent: 430 * man, Wrap: 240 * man, Color: 560 * man},
	{Model: "미니 클럽맨", Size: SizeCompact, Transparent: 430 * man, Wrap: 230 * man, Color: 540 * man},
	// Rolls-Royce
	{Model: "롤스로이스 고스트", Size: SizeSedan, Transparent: 570 * man, Wrap: 340 * man, Color: 700 * man},
	{Model: "롤스로이스 레이스", Size: SizeCompact, Transparent: 560 * man, Wrap: 320 * man, Color: 690 * man},
	{Model: "롤스로이스 팬텀", Size: SizeSedan, Transparent: 630 * man, Wrap: 370 * man, Color: 800 * man},
	{Model: "롤스로이스 컬리넌", Size: SizeSUV, Transparent: 620 * man, Wrap: 360 * man, Color: 760 * man},
	{Model: "롤스로이스 스펙터", Size: SizeCompact, Transparent: 600 * man, Wrap: 320 * man, Color: 700 * man},
	// Mercedes-Benz
	{Model: "벤츠 A클래스", Size: SizeCompact, Transparent: 450 * man, Wrap: 250 * man, Color: 550 * man},
	{Model: "벤츠 C클래스", Size: SizeSedan, Transparent: 470 * man, Wrap: 270 * man, Color: 560 * man},
	{Model: "벤츠 CLS", Size: SizeSedan, Transparent: 490 * man, Wrap: 280 * man, Color: 630 * man},
	{Model: "벤츠 E클래스", Size: SizeSedan, Transparent: 480 * man, Wrap: 260 * man, Color: 570 * man},
	{Model: "벤츠 S클래스", Size: SizeSedan, Transparent: 520 * man, Wrap: 310 * man, Color: 630 * man},
	{Model: "벤츠 AMG GT", Size: SizeSupercar, Transparent: 480 * man, Wrap: 270 * man, Color: 620 * man},
	{Model: "벤츠 SL63", Size: SizeSupercar, Transparent: 490 * man, Wrap: 280 * man, Color: 650 * man},
	{Model: "벤츠 G바겐", Size: SizeSUV, Transparent: 600 * man, Wrap: 360 * man, Color: 700 * man},
	{Model: "벤츠 GT43 / GT63", Size: SizeSedan, Transparent: 480 * man, Wrap: 280 * man, Color: 650 * man},
	{Model: "벤츠 GLA / GLB / GLC", Size: SizeSUV, Transparent: 480 * man, Wrap: 290 * man, Color: 620 * man},
	{Model: "벤츠 GLE", Size: SizeSUV, Transparent: 520 * man, Wrap: 320 * man, Color: 630 * man},
	{Model: "벤츠 GLS", Size: SizeSUV, Transparent: 590 * man, Wrap: 340 * man, Color: 680 * man},
	{Model: "벤츠 EQA / EQB / EQC", Size: SizeSUV, Transparent: 460 * man, Wrap: 270 * man, Color: 620 * man},
	{Model: "벤츠 EQE", Size: SizeSedan, Transparent: 480 * man, Wrap: 300 * man, Color: 670 * man},
	{Model: "벤츠 EQS", Size: SizeSedan, Transparent: 500 * man, Wrap: 320 * man, Color: 680 * man},
	{Model: "벤츠 스프린터", Size: SizeSUV, Transparent: 790 * man, Wrap: 460 * man, Color: 880 * man},
	{Model: "스마트 포투", Size: SizeCompact, Transparent: 350 * man, Wrap: 210 * man, Color: 450 * man},
	// Audi
	{Model: "아우디 TT", Size: SizeCompact, Transparent: 420 * man, Wrap: 250 * man, Color: 550 * man},
	{Model: "아우디 A6", Size: SizeSedan, Transparent: 450 * man, Wrap: 260 * man, Color: 580 * man},
	{Model: "아우디 RS6", Size: SizeSedan, Transparent: 450 * man, Wrap: 280 * man, Color: 580 * man},
	{Model: "아우디 A7 / RS7", Size: SizeSedan, Transparent: 480 * man, Wrap: 280 * man, Color: 630 * man},
	{Model: "아우디 A8 / S8", Size: SizeSedan, Transparent: 520 * man, Wrap: 290 * man, Color: 640 * man},
	{Model: "아우디 Q5", Size: SizeSUV, Transparent: 530 * man, Wrap: 320 * man, Color: 640 * man},
	{Model: "아우디 Q7", Size: SizeSUV, Transparent: 550 * man, Wrap: 340 * man, Color: 690 * man},
	{Model: "아우디 Q8", Size: SizeSUV, Transparent: 550 * man, Wrap: 340 * man, Color: 730 * man},
	{Model: "아우디 Q4 이트론", Size: SizeSUV, Transparent: 490 * man, Wrap: 290 * man, Color: 620 * man},
	{Model: "아우디 이트론 55", Size: SizeSUV, Transparent: 490 * man, Wrap: 310 * man, Color: 640 * man},
	{Model: "아우디 이트론 GT", Size: SizeSedan, Transparent: 510 * man, Wrap: 290 * man, Color: 640 * man},
	{Model: "아우디 R8", Size: SizeSupercar, Transparent: 490 * man, Wrap: 290 * man, Color: 650 * man},
	// Volkswagen
	{Model: "폭스바겐 골프", Size: SizeCompact, Transparent: 420 * man, Wrap: 250 * man, Color: 540 * man},
	// Bentley
	{Model: "벤틀리 컨티넨탈 GT", Size: SizeCompact, Transparent: 560 * man, Wrap: 320 * man, Color: 740 * man},
	{Model: "벤틀리 플라잉스퍼", Size: SizeSedan, Transparent: 580 * man, Wrap: 340 * man, Color: 740 * man},
	{Model: "벤틀리 벤테이가", Size: SizeSUV, Transparent: 600 * man, Wrap: 350 * man, Color: 780 * man},
	// Lamborghini
	{Model: "람보르기니 가야르도", Size: SizeSupercar, Transparent: 480 * man, Wrap: 270 * man, Color: 0},
	{Model: "람보르기니 우라칸", Size: SizeSupercar, Transparent: 530 * man, Wrap: 290 * man, Color: 650 * man},
	{Model: "람보르기니 아벤타도르", Size: SizeSupercar, Transparent: 560 * man, Wrap: 320 * man, Color: 720 * man},
	{Model: "람보르기니 우루스", Size: SizeSUV, Transparent: 600 * man, Wrap: 340 * man, Color: 770 * man},
	// Porsche
	{Model: "포르쉐 박스터 / 카이맨", Size: SizeCompact, Transparent: 460 * man, Wrap: 260 * man, Color: 560 * man},
	{Model: "포르쉐 911", Size: SizeSupercar, Transparent: 500 * man, Wrap: 290 * man, Color: 650 * man},
	{Model: "포르쉐 마칸", Size: SizeSUV, Transparent: 510 * man, Wrap: 290 * man, Color: 650 * man},
	{Model: "포르쉐 카이엔", Size: SizeSUV, Transparent: 510 * man, Wrap: 340 * man, Color: 700 * man},
	{Model: "포르쉐 타이칸", Size: SizeSedan, Transparent: 480 * man, Wrap: 280 * man, Color: 700 * man},
	{Model: "포르쉐 파나메라", Size: SizeSedan, Transparent: 540 * man, Wrap: 290 * man, Color: 700 * man},
	// Volvo
	{Model: "볼보 XC40", Size: SizeSUV, Transparent: 470 * man, Wrap: 260 * man, Color: 620 * man},
	{Model: "볼보 XC60", Size: SizeSUV, Transparent: 490 * man, Wrap: 280 * man, Color: 630 * man},
	{Model: "볼보 XC90", Size: SizeSUV, Transparent: 560 * man, Wrap: 310 * man, Color: 650 * man},
	{Model: "볼보 S90", Size: SizeSedan, Transparent: 480 * man, Wrap: 280 * man, Color: 630 * man},
	// JLR
	{Model: "랜드로버 디스커버리", Size: SizeSUV, Transparent: 470 * man, Wrap: 280 * man, Color: 630 * man, Matte: 580 * man},
	{Model: "랜드로버 디펜더", Size: SizeSUV, Transparent: 540 * man, Wrap: 310 * man, Color: 620 * man, Matte: 580 * man},
	{Model: "레인지로버 벨라", Size: SizeSUV, Transparent: 560 * man, Wrap: 290 * man, Color: 580 * man, Matte: 570 * man},
	{Model: "레인지로버 이보크", Size: SizeSUV, Transparent: 520 * man, Wrap: 270 * man, Color: 580 * man, Matte: 540 * man},
	{Model: "레인지로버 (보그)", Size: SizeSUV, Transparent: 600 * man, Wrap: 340 * man, Color: 660 * man, Matte: 620 * man},
	{Model: "레인지로버 스포츠", Size: SizeSUV, Transparent: 580 * man, Wrap: 320 * man, Color: 620 * man, Matte: 600 * man},
	{Model: "재규어 F-TYPE", Size: SizeCompact, Transparent: 490 * man, Wrap: 250 * man, Color: 560 * man},
	{Model: "재규어 F-PACE", Size: SizeSUV, Transparent: 520 * man, Wrap: 290 * man, Color: 630 * man},
	// Maserati
	{Model: "마세라티 기블리", Size: SizeSedan, Transparent: 480 * man, Wrap: 270 * man, Color: 620 * man},
	{Model: "마세라티 콰트로포르테", Size: SizeSedan, Transparent: 490 * man, Wrap: 280 * man, Color: 620 * man},
	{Model: "마세라티 MC20", Size: SizeSupercar, Transparent: 540 * man, Wrap: 310 * man, Color: 650 * man},
	{Model: "마세라티 르반떼", Size: SizeSUV, Transparent: 560 * man, Wrap: 310 * man, Color: 640 * man},
	// Aston Martin
	{Model: "애스턴마틴 DBX", Size: SizeSUV, Transparent: 560 * man, Wrap: 330 * man, Color: 720 * man},
	{Model: "애스턴마틴 DBS", Size: SizeCompact, Transparent: 530 * man, Wrap: 290 * man, Color: 700 * man},
	{Model: "애스턴마틴 DB11", Size: SizeCompact, Transparent: 510 * man, Wrap: 280 * man, Color: 670 * man},
	// Ferrari
	{Model: "페라리 458", Size: SizeSupercar, Transparent: 530 * man, Wrap: 310 * man, Color: 720 * man},
	{Model: "페라리 488", Size: SizeSupercar, Transparent: 530 * man, Wrap: 310 * man, Color: 720 * man},
	{Model: "페라리 F8 트리뷰토", Size: SizeSupercar, Transparent: 550 * man, Wrap: 330 * man, Color: 760 * man},
	{Model: "페라리 812 슈퍼패스트", Size: SizeSupercar, Transparent: 600 * man, Wrap: 310 * man, Color: 770 * man},
	{Model: "페라리 포르토피노", Size: SizeSupercar, Transparent: 580 * man, Wrap: 310 * man, Color: 760 * man},
	{Model: "페라리 296", Size: SizeSupercar, Transparent: 580 * man, Wrap: 320 * man, Color: 760 * man},
	{Model: "페라리 푸로산게", Size: SizeSUV, Transparent: 600 * man, Wrap: 340 * man, Color: 780 * man},
	{Model: "페라리 로마", Size: SizeSupercar, Transparent: 540 * man, Wrap: 280 * man, Color: 740 * man},
	// McLaren (Trans == Matte)
	{Model: "맥라렌 570S", Size: SizeSupercar, Transparent: 480 * man, Wrap: 290 * man, Color: 700 * man, Matte: 480 * man},
	{Model: "맥라렌 720S", Size: SizeSupercar, Transparent: 530 * man, Wrap: 340 * man, Color: 750 * man, Matte: 530 * man},
	{Model: "맥라렌 600LT / 675LT", Size: SizeSupercar, Transparent: 500 * man, Wrap: 310 * man, Color: 730 * man, Matte: 500 * man},
	{Model: "맥라렌 765LT", Size: SizeSupercar, Transparent: 540 * man, Wrap: 350 * man, Color: 770 * man, Matte: 540 * man},
	// Asian / Others (Specific Matte Prices)
	{Model: "도요타 GR86", Size: SizeCompact, Transparent: 450 * man, Wrap: 240 * man, Color: 0, Matte: 480 * man},
	{Model: "도요타 GR수프라", Size: SizeCompact, Transparent: 460 * man, Wrap: 260 * man, Color: 0, Matte: 490 * man},
	{Model: "도요타 알파드", Size: SizeSUV, Transparent: 530 * man, Wrap: 320 * man, Color: 0, Matte: 560 * man},
	{Model: "렉서스 LC500", Size: SizeCompact, Transparent: 490 * man, Wrap: 270 * man, Color: 0, Matte: 520 * man},
	{Model: "렉서스 LM500h", Size: SizeSUV, Transparent: 530 * man, Wrap: 320 * man, Color: 0, Matte: 560 * man},
	{Model: "마쯔다 MX-5", Size: SizeCompact, Transparent: 450 * man, Wrap: 230 * man, Color: 0, Matte: 480 * man},
	{Model: "마쯔다 미아타유노스", Size: SizeCompact, Transparent: 430 * man, Wrap: 230 * man, Color: 0, Matte: 460 * man},
	{Model: "닛산 GT-R", Size: SizeSupercar, Transparent: 480 * man, Wrap: 270 * man, Color: 0, Matte: 480 * man},
	{Model: "닛산 370Z", Size: SizeCompact, Transparent: 450 * man, Wrap: 280 * man, Color: 0, Matte: 450 * man},
	// Tesla
	{Model: "테슬라 모델3", Size: SizeSedan, Transparent: 430 * man, Wrap: 260 * man, Color: 560 * man},
	{Model: "테슬라 모델Y", Size: SizeSUV, Transparent: 450 * man, Wrap: 270 * man, Color: 580 * man},
	{Model: "테슬라 모델S", Size: SizeSedan, Transparent: 480 * man, Wrap: 280 * man, Color: 600 * man},
	{Model: "테슬라 모델X", Size: SizeSUV, Transparent: 500 * man, Wrap: 290 * man, Color: 580 * man},
	// US / KR / Lotus
	{Model: "쉐보레 콜벳 C7", Size: SizeSupercar, Transparent: 490 * man, Wrap: 280 * man, Color: 640 * man},
	{Model: "쉐보레 콜벳 C8", Size: SizeSupercar, Transparent: 510 * man, Wrap: 280 * man, Color: 660 * man},
	{Model: "캐딜락 에스컬레이드", Size: SizeSUV, Transparent: 580 * man, Wrap: 340 * man, Color: 740 * man},
	{Model: "링컨 네비게이터", Size: SizeSUV, Transparent: 580 * man, Wrap: 360 * man, Color: 640 * man},
	{Model: "로터스 엑시지", Size: SizeCompact, Transparent: 480 * man, Wrap: 270 * man, Color: 700 * man},
	{Model: "로터스 에미라/에보라", Size: SizeCompact, Transparent: 500 * man, Wrap: 270 * man, Color: 720 * man},
	{Model: "포드 브롱코", Size: SizeSUV, Transparent: 440 * man, Wrap: 330 * man, Color: 620 * man},
	{Model: "포드 익스플로러", Size: SizeSUV, Transparent: 450 * man, Wrap: 340 * man, Color: 630 * man},
	{Model: "포드 머스탱", Size: SizeCompact, Transparent: 420 * man, Wrap: 270 * man, Color: 600 * man},
	{Model: "닷지 챌린저", Size: SizeCompact, Transparent: 420 * man, Wrap: 280 * man, Color: 600 * man},
	{Model: "닷지 램 (RAM)", Size: SizeSUV, Transparent: 520 * man, Wrap: 340 * man, Color: 700 * man},
	{Model: "현대 아반떼 N", Size: SizeSedan, Transparent: 450 * man, Wrap: 250 * man, Color: 550 * man},
	{Model: "현대 아이오닉 5N", Size: SizeSUV, Transparent: 480 * man, Wrap: 280 * man, Color: 590 * man},
	{Model: "기아 카니발 하이리무진", Size: SizeSUV, Transparent: 560 * man, Wrap: 340 * man, Color: 650 * man},
	{Model: "제네시스 G70", Size: SizeSedan, Transparent: 470 * man, Wrap: 280 * man, Color: 600 * man},
	{Model: "제네시스 G80 / 그랜저", Size: SizeSedan, Transparent: 480 * man, Wrap: 280 * man, Color: 620 * man},
	{Model: "제네시스 G90", Size: SizeSedan, Transparent: 490 * man, Wrap: 300 * man, Color: 630 * man},
	{Model: "제네시스 GV60", Size: SizeSUV, Transparent: 490 * man, Wrap: 280 * man, Color: 640 * man},
	{Model: "제네시스 GV70", Size: SizeSUV, Transparent: 520 * man, Wrap: 280 * man, Color: 700 * man},
	{Model: "제네시스 GV80 / 팰리세이드", Size: SizeSUV, Transparent: 560 * man, Wrap: 300 * man, Color: 720 * man},
	{Model: "올드카 소형", Size: SizeCompact, Transparent: 450 * man, Wrap: 260 * man, Color: 580 * man},
	{Model: "올드카 중형", Size: SizeSedan, Transparent: 480 * man, Wrap: 280 * man, Color: 600 * man},
}

// fallbackTable prices an uncatalogued model by size class alone. Matte has
// no per-size fallback; it is always derived as transparent + surcharge.
var fallbackTable = map[SizeClass]Vehicle{
	SizeCompact:  {Size: SizeCompact, Transparent: 450 * man, Wrap: 250 * man, Color: 580 * man},
	SizeSedan:    {Size: SizeSedan, Transparent: 480 * man, Wrap: 280 * man, Color: 620 * man},
	SizeSUV:      {Size: SizeSUV, Transparent: 550 * man, Wrap: 320 * man, Color: 680 * man},
	SizeSupercar: {Size: SizeSupercar, Transparent: 550 * man, Wrap: 310 * man, Color: 700 * man},
}
