package econometrics

// Quarterly level fixtures spanning 2010Q1 through 2024Q4. They are built
// so that their cyclical components and log-log fits land on the figures
// of the technical report, which pins the estimators to known numbers.

var vabLevels = []float64{
	1550000, 1600000, 1650000, 1700000,
	1606416.4997288554, 1672789.2014329545, 1742017.525962286, 1840749.3285419042,
	1712389.2740558425, 1727035.0844167422, 1873691.1981051778, 1942007.3651212752,
	1795087.764162104, 1808431.491253952, 1948808.236213513, 2046974.1365945407,
	1855603.471723561, 1835363.0949986964, 1932386.238070062, 2018041.6157920999,
	1895978.9411297226, 1937099.2414841917, 1995495.9564533732, 2096433.911395369,
	2018305.497275576, 1982371.1210489748, 2111669.6864869646, 2267784.4631918008,
	2203012.454613544, 2102508.9195153737, 2259574.2683504527, 2400606.0837527905,
	2340255.0355943306, 2112986.43936275, 2345179.6717673293, 2348941.444098779,
	2214137.5022666897, 2102058.127587631, 2318913.096672846, 2439154.93779882,
	2038134.5164672371, 1729142.7545370185, 2282246.1532721804, 2408787.3136904337,
	2157696.480385962, 1831841.3044881965, 2447888.6511999033, 2625314.500337992,
	2334308.5565212774, 1956875.029965638, 2612451.752919413, 2764983.4550605607,
	2370929.8051089505, 1965688.4083969384, 2622110.9681610744, 2830351.0793993035,
	2379919.8351769242, 2104510.775329642, 2614213.3509612503, 2823898.3892330993,
}

var isrLevels = []float64{
	220000, 230000, 240000, 250000,
	211973.77786898895, 238514.85750610745, 248035.94365910068, 262422.7395850185,
	210812.01102429748, 246915.81623879555, 272110.0847527864, 276188.3725149885,
	233144.10778485195, 268164.61035156756, 295561.0889361767, 299410.44943308755,
	251790.16401148756, 278132.9594008977, 290967.0150143857, 323500.61119771266,
	246897.11514988553, 301877.08943082026, 304715.55748672277, 335541.6128366207,
	262543.3637087248, 318999.7335830546, 322589.6145489067, 349796.63882120734,
	272606.94002023886, 326807.1585657398, 343621.6443273691, 348805.35253470275,
	265521.6401155095, 335834.13913453015, 357994.96313775104, 366531.655557056,
	294046.1614517694, 351433.06581626233, 388860.99609129986, 407496.455584254,
	317575.5113834452, 347368.98932975455, 417329.2318679492, 457421.5037998046,
	329961.5444168785, 348478.2267462875, 433920.7105904173, 503751.2637140614,
	343585.88023949676, 357201.11839430383, 448682.19602809, 523922.19861101004,
	344997.9857830548, 382375.47947416554, 505848.6072156734, 534441.4922779329,
	363916.89016181545, 395913.2334292763, 507367.08812313294, 612815.1272878264,
}

var ivaLevels = []float64{
	180000, 185000, 190000, 195000,
	182366.50094801042, 185713.6376846707, 207398.1417151047, 199423.08395469928,
	198027.39159594887, 193488.7708388304, 227669.0079937488, 215002.29620611152,
	202136.5277416521, 205100.32088756407, 252688.41254283002, 228615.68411977982,
	212937.329417903, 218388.78601241417, 263287.7685427423, 244052.5441298256,
	228865.495836302, 228873.891605728, 264511.7279135477, 255533.8158549124,
	241624.12227149645, 234726.45472405883, 296550.8571570859, 275049.418656708,
	242536.53812746, 249622.48306174317, 301968.83668472484, 281251.45393077633,
	242911.58523835515, 268500.4236452174, 303480.02564882365, 304382.874234616,
	263356.8272751185, 291387.0575930472, 332677.97715148574, 320398.8827942092,
	260334.02446109374, 275771.59891738085, 345687.69159114483, 345511.9158239571,
	263314.7824170319, 277511.865704952, 374221.1760838152, 368842.6522410594,
	305990.87423669203, 270850.4507556769, 377902.91039693647, 375262.589108298,
	335385.9084623007, 289653.5930318998, 402088.2341466051, 387856.08334815025,
	331655.8284556488, 315411.34816487087, 416206.8560365829, 418077.92449884076,
}

var imssLevels = []float64{
	70000, 72000, 74000, 76000,
	71317.82964184899, 75947.19723443036, 76004.13931872281, 83267.34856342987,
	76199.72724451283, 75566.05870751814, 79610.78533217336, 86873.14218689757,
	82047.15410625473, 79897.36530182933, 79833.94721675737, 91439.07575235465,
	85132.53105888722, 82420.8042460485, 82686.07368805516, 96736.38348148517,
	87160.17081621422, 85450.87368968558, 86710.73950541725, 105364.10866612231,
	95571.91205038849, 85520.14105045403, 91690.12089077881, 117219.04676352885,
	102033.11432835102, 98746.2599613641, 97419.29823803598, 125604.05057536856,
	108253.6417160306, 102051.38060630257, 106499.04351007365, 125629.85325027931,
	106343.79032689406, 109164.28448546049, 107719.27375851187, 130869.11627462323,
	105590.22292704794, 102309.1092561071, 112464.54018605633, 130511.85256303192,
	111418.0925473862, 110839.70366021714, 126096.52014333416, 137453.3313753028,
	113503.62413450395, 118401.01420003934, 145190.3839814064, 150019.77351074535,
	122998.7408017616, 121293.60749520274, 151504.42096356256, 150918.0882901443,
	125947.74350911919, 132057.61718138648, 156621.14652984153, 160561.77871723953,
}

var isrElasticityLevels = []float64{
	1234987.8954184775, 1664882.4668121813, 1465290.508700974, 1475526.3877225304,
	1640215.7807897911, 1783246.690355784, 1994050.4906606846, 1854859.6067523153,
	1735662.040683792, 1619905.3615485178, 1626314.2036629114, 1893182.3292440884,
	1875252.498828853, 2072984.7951723975, 2095060.9764154751, 2026129.3001344781,
	1810196.8061709253, 1843795.5469433775, 2110899.4872598858, 2379030.528281826,
	1758399.993154641, 2094097.3452734707, 2343123.455749325, 1802793.5373057097,
	1615908.9948440318, 1840157.3885631843, 2225833.2375966986, 2666661.6160696363,
	2388896.8652380854, 1923352.3108504072, 2370754.031074884, 2276961.5330488714,
	2430328.8515365617, 2085749.143192284, 2701886.65657427, 2243492.8559078844,
	2208948.872466593, 2035722.496151175, 2514181.607227994, 2371531.9380547567,
	1925230.8714421303, 1511450.714396199, 2725789.3186643226, 2572017.0665944437,
	2119207.460117137, 1804537.08549318, 2502447.5445544184, 3125475.85735254,
	2569418.758468249, 1927875.7157015095, 2769252.6409772406, 3282946.057424323,
	2327300.414918818, 1846096.2443760163, 2808549.957408602, 3296938.766928989,
	2392682.9660590575, 2373819.775191298, 3010934.7635928495, 3148903.7346106186,
}

var imssElasticityLevels = []float64{
	34971.29321145211, 37955.32491525245, 37858.99870576725, 42478.095024458205,
	39243.68315439297, 42487.260398667095, 43699.2305529692, 42879.68190987924,
	45076.25902217564, 41950.58725887517, 45299.86603242843, 45641.23233157046,
	40948.754191077955, 42556.13724479925, 45966.19711191645, 50966.82987520775,
	44155.14725716704, 45574.33206141362, 48725.00042042015, 51009.068069268964,
	45189.57514583991, 44880.28953562988, 48809.34317888564, 48365.39965071002,
	47987.30277007713, 48125.28447969007, 52525.43729402354, 57537.27711268868,
	53168.752429026725, 53512.65138825417, 53008.2430955566, 57509.19927573931,
	59573.2374767288, 51924.63138191031, 58553.587011608535, 54441.039822409126,
	55158.49113244633, 52023.159705307145, 57013.66377220775, 65196.19925801219,
	48344.57892138991, 40697.54129487391, 56959.7323381986, 58552.5464842011,
	50553.171363233385, 45377.938842169024, 66216.3803254641, 66128.78567968622,
	61819.21891010526, 45143.72633968531, 65962.42241959088, 67586.35333781937,
	65255.80870824469, 45857.09361502914, 66481.5564777038, 71920.0452243141,
	58710.02110298994, 51786.15097387827, 63718.15910515578, 75596.06277187791,
}
